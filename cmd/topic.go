package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/pricebook/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `pbk topic [<topic>...]

Show documentation for the given topics, '*' for all of them.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Overview}
	}

	doc, err := docs.Topics(topics...)
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
