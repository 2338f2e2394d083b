// Package reagent implements a step-bounded reasoning/acting agent loop over
// a plain-text protocol.
//
// The agent sends a conversation to a language model and expects each reply
// to contain exactly one Thought/Action/Action Input directive. Tool results
// are fed back as Observation lines, and the loop repeats until the model
// invokes the terminal "answer" tool or the step budget runs out. Malformed
// and runaway replies are recovered inside the loop; only a transport
// failure reaches the caller as an error.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/rickchristie/reagent"
//	    "github.com/rickchristie/reagent/models"
//	    "github.com/rickchristie/reagent/tools"
//	)
//
//	func main() {
//	    // 1. Create a transport
//	    transport, err := models.NewOllama(models.DefaultOllamaServerURL, "qwen2.5:14b")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // 2. Create the agent with tools; the terminal "answer" tool is
//	    //    always present
//	    agent, err := reagent.NewAgent(transport,
//	        tools.NewCalculator(),
//	        tools.NewClock(reagent.NewDefaultTimeProvider()),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    agent.WithMaxSteps(15)
//
//	    // 3. Run a task
//	    answer, err := agent.Task(context.Background(), "What is 2+2 times 8?")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(answer)
//	}
//
// Custom tools implement the Tool interface or wrap a function with
// NewToolFunc; parameter schemas come from the schema subpackage and are
// validated before each dispatch. Hooks observe the loop (steps, model
// calls, tool calls, parse recoveries) through a HookRegistry.
package reagent
