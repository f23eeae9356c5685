package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/dominion/pkg/errors"
)

// entry is a simple type for testing
type entry struct {
	Cost int
	Kind string
}

func TestNew(t *testing.T) {
	reg := New[entry]()

	if reg == nil {
		t.Fatal("New() returned nil")
	}

	if reg.Count() != 0 {
		t.Errorf("New registry should be empty, got count %d", reg.Count())
	}
}

func TestRegister(t *testing.T) {
	reg := New[entry]()

	t.Run("register valid item", func(t *testing.T) {
		item := entry{Cost: 0, Kind: "Treasure"}
		err := reg.Register("copper", item)

		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}

		if reg.Count() != 1 {
			t.Errorf("Count() = %d, want 1", reg.Count())
		}
	})

	t.Run("register with empty name", func(t *testing.T) {
		item := entry{Cost: 2, Kind: "Victory"}
		err := reg.Register("", item)

		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with empty name should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		item := entry{Cost: 3, Kind: "Treasure"}
		err := reg.Register("copper", item)

		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("Register() duplicate should return ErrAlreadyExists, got %v", err)
		}
	})
}

func TestGet(t *testing.T) {
	reg := New[entry]()
	item := entry{Cost: 0, Kind: "Treasure"}
	_ = reg.Register("copper", item)

	t.Run("get existing item", func(t *testing.T) {
		got, err := reg.Get("copper")

		if err != nil {
			t.Fatalf("Get() error = %v, want nil", err)
		}

		if got.Cost != item.Cost || got.Kind != item.Kind {
			t.Errorf("Get() = %+v, want %+v", got, item)
		}
	})

	t.Run("get non-existing item", func(t *testing.T) {
		_, err := reg.Get("witch")

		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Get() non-existing should return ErrNotFound, got %v", err)
		}
	})
}

func TestRemove(t *testing.T) {
	reg := New[entry]()
	item := entry{Cost: 0, Kind: "Treasure"}
	_ = reg.Register("copper", item)

	t.Run("remove existing item", func(t *testing.T) {
		err := reg.Remove("copper")

		if err != nil {
			t.Fatalf("Remove() error = %v, want nil", err)
		}

		if reg.Has("copper") {
			t.Error("Item should not exist after removal")
		}
	})

	t.Run("remove non-existing item", func(t *testing.T) {
		err := reg.Remove("witch")

		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Remove() non-existing should return ErrNotFound, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	reg := New[entry]()

	// Register items in non-alphabetical order; List must preserve it
	items := []string{"village", "cellar", "moat"}
	for i, name := range items {
		_ = reg.Register(name, entry{Cost: i})
	}

	list := reg.List()

	if len(list) != len(items) {
		t.Fatalf("List() returned %d items, want %d", len(list), len(items))
	}

	for i, name := range list {
		if name != items[i] {
			t.Errorf("List()[%d] = %s, want %s", i, name, items[i])
		}
	}
}

func TestListAfterRemove(t *testing.T) {
	reg := New[entry]()

	for i, name := range []string{"copper", "silver", "gold"} {
		_ = reg.Register(name, entry{Cost: i})
	}

	_ = reg.Remove("silver")

	list := reg.List()
	expected := []string{"copper", "gold"}

	if len(list) != len(expected) {
		t.Fatalf("List() returned %d items, want %d", len(list), len(expected))
	}

	for i, name := range list {
		if name != expected[i] {
			t.Errorf("List()[%d] = %s, want %s", i, name, expected[i])
		}
	}
}

func TestHas(t *testing.T) {
	reg := New[entry]()
	_ = reg.Register("copper", entry{Cost: 0})

	tests := []struct {
		name     string
		itemName string
		want     bool
	}{
		{"existing item", "copper", true},
		{"non-existing item", "witch", false},
		{"empty name", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Has(tt.itemName); got != tt.want {
				t.Errorf("Has(%s) = %v, want %v", tt.itemName, got, tt.want)
			}
		})
	}
}

func TestClear(t *testing.T) {
	reg := New[entry]()

	// Register multiple items
	for i := 0; i < 5; i++ {
		_ = reg.Register(fmt.Sprintf("card%d", i), entry{Cost: i})
	}

	if reg.Count() != 5 {
		t.Fatalf("Expected 5 items before clear, got %d", reg.Count())
	}

	reg.Clear()

	if reg.Count() != 0 {
		t.Errorf("Count() after Clear() = %d, want 0", reg.Count())
	}

	if len(reg.List()) != 0 {
		t.Errorf("List() after Clear() should be empty")
	}
}

func TestCount(t *testing.T) {
	reg := New[entry]()

	for i := 0; i < 3; i++ {
		if reg.Count() != i {
			t.Errorf("Count() = %d, want %d", reg.Count(), i)
		}
		_ = reg.Register(fmt.Sprintf("card%d", i), entry{Cost: i})
	}
}

func TestConcurrency(t *testing.T) {
	reg := New[entry]()
	const goroutines = 10
	const itemsPerGoroutine = 100

	// Test concurrent writes
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(goroutineID int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				name := fmt.Sprintf("g%d_card%d", goroutineID, i)
				item := entry{Cost: goroutineID*1000 + i}
				if err := reg.Register(name, item); err != nil {
					t.Errorf("Concurrent Register() failed: %v", err)
				}
			}
		}(g)
	}

	wg.Wait()

	expectedCount := goroutines * itemsPerGoroutine
	if reg.Count() != expectedCount {
		t.Errorf("Count() after concurrent writes = %d, want %d", reg.Count(), expectedCount)
	}

	// Test concurrent reads
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(goroutineID int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				name := fmt.Sprintf("g%d_card%d", goroutineID, i)
				if _, err := reg.Get(name); err != nil {
					t.Errorf("Concurrent Get() failed: %v", err)
				}
			}
		}(g)
	}

	wg.Wait()
}

func TestMustRegister(t *testing.T) {
	reg := New[entry]()

	t.Run("successful registration", func(t *testing.T) {
		// Should not panic
		MustRegister(reg, "copper", entry{Cost: 0})

		if !reg.Has("copper") {
			t.Error("MustRegister() should have registered the item")
		}
	})

	t.Run("panic on duplicate", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("MustRegister() should panic on duplicate registration")
			}
		}()

		MustRegister(reg, "copper", entry{Cost: 1})
	})
}

func TestMustGet(t *testing.T) {
	reg := New[entry]()
	item := entry{Cost: 0, Kind: "Treasure"}
	_ = reg.Register("copper", item)

	t.Run("successful get", func(t *testing.T) {
		// Should not panic
		got := MustGet[entry](reg, "copper")

		if got.Cost != item.Cost {
			t.Errorf("MustGet() = %+v, want %+v", got, item)
		}
	})

	t.Run("panic on not found", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("MustGet() should panic when item not found")
			}
		}()

		MustGet[entry](reg, "witch")
	})
}

// Describer interface for testing registries of interface types
type Describer interface {
	Describe() string
}

type testCard struct {
	name string
}

func (c *testCard) Describe() string { return c.name }

// TestWithInterfaces tests registry with interface types
func TestWithInterfaces(t *testing.T) {
	reg := New[Describer]()

	card1 := &testCard{name: "Moat"}
	card2 := &testCard{name: "Village"}

	_ = reg.Register("moat", card1)
	_ = reg.Register("village", card2)

	if reg.Count() != 2 {
		t.Errorf("Count() = %d, want 2", reg.Count())
	}

	got, err := reg.Get("moat")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if got.Describe() != "Moat" {
		t.Errorf("Get() returned wrong card: %s", got.Describe())
	}
}

// TestWithFunctions tests registry with function types
func TestWithFunctions(t *testing.T) {
	type HandlerFunc func(string) error

	reg := New[HandlerFunc]()

	handler1 := func(s string) error { return nil }
	handler2 := func(s string) error { return fmt.Errorf("error: %s", s) }

	_ = reg.Register("handler1", handler1)
	_ = reg.Register("handler2", handler2)

	h, err := reg.Get("handler2")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if err := h("test"); err == nil || err.Error() != "error: test" {
		t.Error("Retrieved function doesn't behave as expected")
	}
}

// Benchmark tests
func BenchmarkRegister(b *testing.B) {
	reg := New[entry]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		name := fmt.Sprintf("card%d", i)
		_ = reg.Register(name, entry{Cost: i})
	}
}

func BenchmarkGet(b *testing.B) {
	reg := New[entry]()

	// Pre-populate registry
	for i := 0; i < 1000; i++ {
		_ = reg.Register(fmt.Sprintf("card%d", i), entry{Cost: i})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		name := fmt.Sprintf("card%d", i%1000)
		_, _ = reg.Get(name)
	}
}

func BenchmarkList(b *testing.B) {
	reg := New[entry]()

	// Pre-populate registry
	for i := 0; i < 100; i++ {
		_ = reg.Register(fmt.Sprintf("card%d", i), entry{Cost: i})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = reg.List()
	}
}

// Example usage
func ExampleRegistry() {
	// Create a registry for string handlers
	reg := New[func() string]()

	// Register some handlers
	_ = reg.Register("greeting", func() string { return "Hello, World!" })
	_ = reg.Register("farewell", func() string { return "Goodbye!" })

	// List all registered handlers in registration order
	names := reg.List()
	fmt.Println("Registered handlers:", names)

	// Get and execute a handler
	if handler, err := reg.Get("greeting"); err == nil {
		fmt.Println(handler())
	}

	// Output:
	// Registered handlers: [greeting farewell]
	// Hello, World!
}
