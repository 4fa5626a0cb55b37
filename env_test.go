package pcf

import (
	"reflect"
	"testing"
)

func Test_Env_Extend_Does_Not_Mutate(t *testing.T) {
	base := NewEnv(Binding{Name: "x", Value: Num(1)})
	ext := base.Extend("x", Num(2)).Extend("y", Num(3))

	if v, _ := base.Lookup("x"); v.Data.(uint64) != 1 {
		t.Fatalf("base changed: %v", v)
	}
	if _, ok := base.Lookup("y"); ok {
		t.Fatalf("base sees later binding")
	}
	if v, _ := ext.Lookup("x"); v.Data.(uint64) != 2 {
		t.Fatalf("most recent binding must win, got %v", v)
	}
}

func Test_Env_Empty(t *testing.T) {
	var e *Env
	if _, ok := e.Lookup("x"); ok {
		t.Fatalf("empty env has no bindings")
	}
	if e.Len() != 0 || NewEnv() != nil {
		t.Fatalf("empty env should be nil with no names")
	}
}

func Test_Env_Names(t *testing.T) {
	e := NewEnv(
		Binding{Name: "a", Value: Num(1)},
		Binding{Name: "b", Value: Num(2)},
		Binding{Name: "a", Value: Num(3)},
	)
	if got := e.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("names: %v", got)
	}
	if e.Len() != 2 {
		t.Fatalf("len: %d", e.Len())
	}
}
