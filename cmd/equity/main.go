package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

var (
	GitCommit string
	Version   string
)

func version() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if GitCommit != "" {
		v += " (" + GitCommit + ")"
	}
	return v
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
