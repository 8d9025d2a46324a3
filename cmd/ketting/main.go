// Package main provides the ketting CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("ketting %s\n", version)
		return
	case "train":
		err = runTrain(os.Args[2:])
	case "gradcheck":
		err = runGradCheck(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Println("ketting - scalar autodiff and tiny neural networks")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version      Show version")
	fmt.Println("  train        Train a network on the built-in dataset")
	fmt.Println("  gradcheck    Compare backprop gradients with finite differences")
	fmt.Println("")
	fmt.Println("Run 'ketting <command> -h' for command flags.")
}
