package main

import (
	"os"

	"github.com/golang/glog"

	"github.com/samuelfneumann/golearn-policy/cmd"
)

func main() {
	defer glog.Flush()

	if err := cmd.RootCommand().Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
}
