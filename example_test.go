package templatest_test

import (
	"fmt"
	"strings"

	"github.com/skosovsky/templatest"
)

type UpperHelloWorld struct{}

func (UpperHelloWorld) Template() string { return "hello world" }
func (UpperHelloWorld) Expected() string { return "HELLO WORLD" }

type UpperGoodbye struct{}

func (UpperGoodbye) Template() string { return "goodbye" }
func (UpperGoodbye) Expected() string { return "GOODBYE" }

func ExampleRegistered() {
	reg := templatest.NewRegistered()
	_ = reg.Register(UpperHelloWorld{})
	_ = reg.Register(UpperGoodbye{})
	for _, tpl := range reg.GetGroup("upper").All() {
		fmt.Println(tpl.Name, strings.ToUpper(tpl.Template) == tpl.Expected)
	}
	// Output:
	// upper-hello-world true
	// upper-goodbye true
}

func ExampleRegistered_Add() {
	reg := templatest.NewRegistered()
	_ = reg.Add("strip-space", " a ", "a")
	err := reg.Add("strip-space", "b ", "b")
	fmt.Println(err)
	// Output: templatest: registered name conflict at strip-space: "strip-space"
}

func ExampleDeriveName() {
	fmt.Println(templatest.DeriveName("MultiTestTemplate_0"))
	// Output: multi-test-template-0
}
