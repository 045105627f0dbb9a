package slotvec_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/slotvec"
	"github.com/hupe1980/slotvec/mem"
	"github.com/hupe1980/slotvec/resource"
)

// Example demonstrates the basic lifecycle of a vector.
func Example() {
	v, err := slotvec.New(slotvec.Config[uint32]{
		Destroy: func(uint32) {},
		Print:   func(x uint32) { fmt.Println(x) },
	}, slotvec.WithCapacity(2))
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	for _, x := range []uint32{10, 20, 30} {
		if _, err := v.Push(x); err != nil {
			log.Fatal(err)
		}
	}

	if err := v.DeleteKey(10); err != nil {
		log.Fatal(err)
	}

	_ = v.Print()
	fmt.Println("len", v.Len(), "cap", v.Cap())
	// Output:
	// 20
	// 30
	// len 2 cap 4
}

// Example_find demonstrates lookup with a custom Equal callback.
func Example_find() {
	type account struct {
		ID      uint32
		Balance int64
	}

	v, err := slotvec.New(slotvec.Config[account]{
		Equal:   func(elem, key account) bool { return elem.ID == key.ID },
		Destroy: func(account) {},
		Print:   func(a account) { fmt.Printf("%d:%d\n", a.ID, a.Balance) },
	})
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	_, _ = v.Push(account{ID: 1, Balance: 100})
	_, _ = v.Push(account{ID: 2, Balance: 250})

	a, err := v.Find(account{ID: 2})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(a.Balance)

	_, err = v.Find(account{ID: 3})
	fmt.Println(errors.Is(err, slotvec.ErrNotFound))
	// Output:
	// 250
	// true
}

// Example_emplace demonstrates building elements in place.
func Example_emplace() {
	type point struct{ X, Y int32 }

	v, err := slotvec.New(slotvec.Config[point]{
		Destroy: func(point) {},
		Print:   func(p point) { fmt.Printf("(%d,%d)\n", p.X, p.Y) },
		Construct: func(p *point, args any) {
			xy := args.([2]int32)
			p.X, p.Y = xy[0], xy[1]
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	_, _ = v.Emplace([2]int32{1, 2})
	_, _ = v.Emplace([2]int32{3, 4})

	_ = v.Print()
	// Output:
	// (1,2)
	// (3,4)
}

// Example_budget demonstrates capping the memory of a vector.
func Example_budget() {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 64})

	v, err := slotvec.New(slotvec.Config[uint64]{
		Destroy: func(uint64) {},
		Print:   func(uint64) {},
	}, slotvec.WithCapacity(4), slotvec.WithAllocator(mem.NewBudgeted(mem.NewHeap(), rc)))
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	for i := range uint64(9) {
		if _, err := v.Push(i); err != nil {
			fmt.Println("push failed:", errors.Is(err, slotvec.ErrAllocationFailed))
			break
		}
	}
	fmt.Println("len", v.Len())
	// Output:
	// push failed: true
	// len 8
}
