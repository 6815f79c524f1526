package main

import "github.com/theirongolddev/osacorpus/cmd"

func main() {
	cmd.Execute()
}
