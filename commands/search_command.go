// Package commands holds the chat command surfaces of the bot. Each command
// registers its routes on the controller and maps matched text to domain
// values, leaving execution to the services layer.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"search-bot/contract"
	"search-bot/domain/chat"
	"search-bot/domain/search"
	"search-bot/services"
)

// The three route patterns are mutually exclusive by construction, not by
// evaluation order: the default form requires end-of-input right after the
// closing backtick, so it can never also match the relative or absolute
// forms. The unit group must stay in sync with search.ParseTimeUnit.
var (
	searchDefaultWindow  = regexp.MustCompile("^search `(.+)`\\s*$")
	searchRelativeWindow = regexp.MustCompile("^search `(.+)` last (\\d+) ?(minutes?|mins?|m|hours?|h)\\s*$")
	searchAbsoluteWindow = regexp.MustCompile("^search `(.+?)` from (.+?) to (.+?)\\s*$")
)

// route binds one intent pattern to the query construction it implies.
type route struct {
	kind    search.WindowKind
	pattern *regexp.Regexp
	build   func(groups []string) (search.Query, error)
}

// SearchCommand classifies inbound text into one of three search intents,
// builds the corresponding Query and hands it to the execution pipeline.
type SearchCommand struct {
	log      *slog.Logger
	pipeline services.ISearchService
}

func NewSearchCommand(log *slog.Logger, pipeline services.ISearchService) *SearchCommand {
	return &SearchCommand{log: log, pipeline: pipeline}
}

func (c *SearchCommand) Configure(controller contract.IController) {
	for _, r := range c.routes() {
		controller.Hears(r.pattern, func(msg chat.Message, groups []string) {
			c.dispatch(msg, r, groups)
		})
	}
}

func (c *SearchCommand) Category() string {
	return "search"
}

func (c *SearchCommand) Usage() []string {
	return []string{
		"*search `<query-string>`* - Get the query results for the last 15 minutes",
		"*search `<query-string>` last <time-value> <time-unit>* - Get the query results for the last _x_ minutes or hours",
		"*search `<query-string>` from <from-timestamp> to <to-timestamp>* - Get the query results between the start and end times",
	}
}

func (c *SearchCommand) routes() []route {
	return []route{
		{
			kind:    search.WindowDefault,
			pattern: searchDefaultWindow,
			build: func(groups []string) (search.Query, error) {
				return search.NewBuilder().
					WithQueryString(groups[0]).
					Build()
			},
		},
		{
			kind:    search.WindowRelative,
			pattern: searchRelativeWindow,
			build: func(groups []string) (search.Query, error) {
				unit, err := search.ParseTimeUnit(groups[2])
				if err != nil {
					return search.Query{}, err
				}
				return search.NewBuilder().
					WithQueryString(groups[0]).
					WithRelativeTime(groups[1], unit).
					Build()
			},
		},
		{
			kind:    search.WindowAbsolute,
			pattern: searchAbsoluteWindow,
			build: func(groups []string) (search.Query, error) {
				return search.NewBuilder().
					WithQueryString(groups[0]).
					WithExactTime(groups[1], groups[2]).
					Build()
			},
		},
	}
}

// dispatch builds the query for the matched route. Construction failures
// abort before any backend call and produce the single generic reply.
func (c *SearchCommand) dispatch(msg chat.Message, r route, groups []string) {
	c.log.Info(
		fmt.Sprintf("User %s from team %s triggered a search with %s time frame", msg.User, msg.Team, r.kind),
		"intent", string(r.kind),
	)

	query, err := r.build(groups)
	if err != nil {
		c.pipeline.Reject(msg, groups[0], err)
		return
	}

	c.pipeline.Execute(context.Background(), chat.NewRequestContext(msg, groups[0]), msg, query)
}
