// main.go
//
// Multi-step job application form state service.
// Runs the full test container stack (database, authorizer, service) until
// interrupted, for manual poking and debugger sessions.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hireflow/formstate/tests/helpers"
	"github.com/joho/godotenv"
)

const usage = `
Run the formstate test container stack with environment from a .env file.

Usage:

  testcontainers [-h] [-f ENV_FILE_PATH]

The stack stays up until SIGINT/SIGTERM, then tears down in order.
`

func main() {
	showHelp := flag.Bool("h", false, "show help")
	envFilename := flag.String("f", "", "path to the .env file")
	flag.Parse()

	if *showHelp {
		fmt.Print(usage)
		return
	}

	if *envFilename != "" {
		if err := godotenv.Load(*envFilename); err != nil {
			log.Fatalf("Failed to load environment variables from %s: %v", *envFilename, err)
		}
		log.Printf("Loaded environment variables from %s", *envFilename)
	} else {
		log.Print("No environment file specified, using current environment variables")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	stack, err := helpers.CreateAllTestContainers(nil)
	if err != nil {
		log.Fatalf("Failed to create test containers: %v", err)
	}

	log.Print("Stack is up; press Ctrl-C to tear down")
	sig := <-sigs
	log.Printf("Received signal %v, terminating test containers...", sig)
	stack.Terminate(nil)
}
