package cmd

// Version is injected at build time:
//
//	go build -ldflags "-X github.com/timvw/gh-ghq-cd/cmd.Version=v1.2.3"
var Version = "dev"
