package main

import "github.com/theirongolddev/mealtab/cmd"

func main() {
	cmd.Execute()
}
