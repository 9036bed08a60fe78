package relay_test

import (
	"errors"
	"fmt"

	"github.com/dshills/relay"
	"github.com/dshills/relay/registry"
	"github.com/dshills/relay/token"
)

// Greet asks for a greeting string.
type Greet struct {
	relay.Of[string]
	Name string
}

type greeter struct {
	prefix string
}

func (g greeter) Handle(tok token.Token, req Greet) (string, error) {
	return g.prefix + ", " + req.Name, nil
}

func ExampleSend() {
	reg := registry.New()
	reg.Register(greeter{prefix: "hello"})
	eng := relay.NewWithDefaults(reg)

	set := relay.Send[string](eng, token.New(), Greet{Name: "dana"})

	greeting, _ := set.Get()
	fmt.Println(greeting)
	// Output: hello, dana
}

func ExampleSendAsync() {
	reg := registry.New()
	reg.Register(
		greeter{prefix: "hello"},
		greeter{prefix: "welcome"},
	)
	eng := relay.NewWithDefaults(reg)

	p := relay.SendAsync[string](eng, token.New(), Greet{Name: "dana"})

	// Results come back in registration order, whatever order the
	// handlers finished in.
	p.Get().EachValue(func(greeting string) {
		fmt.Println(greeting)
	})
	// Output:
	// hello, dana
	// welcome, dana
}

func ExampleSendOne() {
	eng := relay.NewWithDefaults(registry.New())

	_, err := relay.SendOne[string](eng, token.New(), Greet{Name: "dana"})

	fmt.Println(errors.Is(err, relay.ErrNoHandler))
	// Output: true
}
