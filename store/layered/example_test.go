package layered

import "fmt"

func ExampleStore_Commit() {
	s := New[int]()

	s.Set("balance", 100)

	s.Begin()
	s.Set("balance", 250)

	value, _ := s.Get("balance")
	fmt.Println("inside:", value)

	s.Commit()

	value, _ = s.Get("balance")
	fmt.Println("committed:", value)

	// Output: inside: 250
	// committed: 250
}

func ExampleStore_Rollback() {
	s := New[string]()

	s.Set("owner", "alice")

	s.Begin()
	s.Delete("owner")

	_, found := s.Get("owner")
	fmt.Println("visible inside:", found)

	s.Rollback()

	value, _ := s.Get("owner")
	fmt.Println("after rollback:", value)

	// Output: visible inside: false
	// after rollback: alice
}
