package main

import (
	"fmt"
	"log"

	"github.com/theflywheel/chash"
)

func main() {
	m, err := chash.New[string, int](chash.StringHasher)
	if err != nil {
		log.Fatalf("Failed to create map: %v", err)
	}

	fmt.Println("Map created successfully")

	// Insert some data
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for i, w := range words {
		m.Put(w, i*100)
	}

	fmt.Printf("Inserted %d key-value pairs\n", m.Len())

	// Retrieve and display some values, including a miss
	for _, w := range []string{"alpha", "gamma", "omega"} {
		if v, ok := m.Get(w); ok {
			fmt.Printf("Key %q => Value %d\n", w, v)
		} else {
			fmt.Printf("Key %q not found\n", w)
		}
	}

	// Update a value; Put hands back what it replaced
	before, _ := m.Put("beta", 999)
	fmt.Printf("Updated \"beta\": %d => 999\n", before)

	// Walk the live entries view
	it := m.Entries().Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			log.Fatalf("Iteration failed: %v", err)
		}
		fmt.Printf("  %s = %d\n", e.Key, e.Value)
	}

	// Remove through the key view and confirm
	m.Keys().Remove("delta")
	fmt.Printf("After removal: %d entries, capacity %d\n", m.Len(), m.Capacity())

	fmt.Println("Example completed successfully")
}
