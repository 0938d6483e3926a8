package main

import "github.com/google/btree"

// Table maps unique names to payloads, iterating in name order.
// The zero value is an empty table ready to use.
type Table[T any] struct {
	tree *btree.BTreeG[entry[T]]
}

type entry[T any] struct {
	name string
	val  T
}

func entryLess[T any](a, b entry[T]) bool { return a.name < b.name }

const tableDegree = 8

// Define inserts or overwrites name; it returns true if name was already
// defined.
func (tab *Table[T]) Define(name string, val T) (replaced bool) {
	if tab.tree == nil {
		tab.tree = btree.NewG(tableDegree, entryLess[T])
	}
	_, replaced = tab.tree.ReplaceOrInsert(entry[T]{name, val})
	return replaced
}

// Lookup returns the payload defined for name, or an UndefinedName error.
func (tab *Table[T]) Lookup(name string) (val T, err error) {
	if tab.tree != nil {
		if ent, found := tab.tree.Get(entry[T]{name: name}); found {
			return ent.val, nil
		}
	}
	return val, errorf(UndefinedName, name, "")
}

// Has returns true if name is defined.
func (tab *Table[T]) Has(name string) bool {
	return tab.tree != nil && tab.tree.Has(entry[T]{name: name})
}

// Delete removes name, returning true if it was defined.
func (tab *Table[T]) Delete(name string) bool {
	if tab.tree == nil {
		return false
	}
	_, found := tab.tree.Delete(entry[T]{name: name})
	return found
}

// Len returns the number of defined names.
func (tab *Table[T]) Len() int {
	if tab.tree == nil {
		return 0
	}
	return tab.tree.Len()
}

// Ascend calls each in name order until it returns false.
func (tab *Table[T]) Ascend(each func(name string, val T) bool) {
	if tab.tree == nil {
		return
	}
	tab.tree.Ascend(func(ent entry[T]) bool {
		return each(ent.name, ent.val)
	})
}

// Names returns every defined name in order.
func (tab *Table[T]) Names() []string {
	names := make([]string, 0, tab.Len())
	tab.Ascend(func(name string, _ T) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Clear removes every definition.
func (tab *Table[T]) Clear() {
	if tab.tree != nil {
		tab.tree.Clear(false)
	}
}

// Macro is a user defined word: invoking it evaluates Body in place.
type Macro struct {
	Name string
	Body Tree
}

func (mac Macro) String() string { return "fn " + Word(mac.Name).String() + " " + mac.Body.String() }
