package slotvec

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	mc.RecordPush(10*time.Millisecond, nil)
	mc.RecordPush(30*time.Millisecond, errors.New("boom"))
	mc.RecordGrow(4, 8)
	mc.RecordGrow(1, 2)
	mc.RecordDelete(time.Millisecond, nil)
	mc.RecordFind(time.Millisecond, true)
	mc.RecordFind(time.Millisecond, false)
	mc.RecordAllocFailure("push")

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.PushCount)
	assert.Equal(t, int64(1), stats.PushErrors)
	assert.Equal(t, 20*time.Millisecond, stats.AvgPushLatency)
	assert.Equal(t, int64(2), stats.GrowCount)
	assert.Equal(t, int64(8), stats.MaxCapacity, "max capacity never decreases")
	assert.Equal(t, int64(1), stats.DeleteCount)
	assert.Equal(t, int64(0), stats.DeleteErrors)
	assert.Equal(t, int64(2), stats.FindCount)
	assert.Equal(t, int64(1), stats.FindMisses)
	assert.Equal(t, int64(1), stats.AllocFailures)
}

func TestBasicMetricsCollectorConcurrent(t *testing.T) {
	mc := &BasicMetricsCollector{}

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				mc.RecordPush(time.Microsecond, nil)
				mc.RecordGrow(0, i*100+j)
			}
		}()
	}
	wg.Wait()

	stats := mc.GetStats()
	assert.Equal(t, int64(800), stats.PushCount)
	assert.Equal(t, int64(799), stats.MaxCapacity)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		mc.RecordPush(0, nil)
		mc.RecordGrow(0, 1)
		mc.RecordDelete(0, nil)
		mc.RecordFind(0, false)
		mc.RecordAllocFailure("push")
	})
}
