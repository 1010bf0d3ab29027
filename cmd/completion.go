package cmd

import (
	"log"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/pricebook/docs"
)

// Complete answers the shell completion requests of the pbk command. It
// exits when the shell asked for completion, and returns otherwise.
//
// Install it with `COMP_INSTALL=1 pbk`.
func Complete() {
	completion().Complete("pbk")
}

func completion() *complete.Command {
	sheets := predict.Files("*.xlsx")
	dates := complete.PredictFunc(predictDates)
	items := complete.PredictFunc(predictItems)

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"prices-file": predict.Files("*.csv"),
			"orders-file": predict.Files("*.csv"),
			"store":       predict.Set{"csv", "sqlite"},
			"sqlite-path": predict.Files("*.db"),
			"threshold":   predict.Something,
			"o":           predict.Set{"term", "md", "html"},
			"v":           predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"import": {
				Flags: map[string]complete.Predictor{"alerts": predict.Nothing, "path": predict.Something},
				Args:  predict.Or(sheets, predict.Files("*.csv"), predict.Files("*.json")),
			},
			"latest":  {},
			"dates":   {},
			"history": {Args: items},
			"trend":   {Args: items},
			"compare": {Flags: map[string]complete.Predictor{"s": dates, "e": dates}},
			"alerts":  {Flags: map[string]complete.Predictor{"d": dates}},
			"clear":   {Flags: map[string]complete.Predictor{"y": predict.Nothing}},
			"order": {
				Flags: map[string]complete.Predictor{
					"f":    predict.Or(sheets, predict.Files("*.csv")),
					"save": predict.Nothing,
					"xlsx": sheets,
				},
				Args: complete.PredictFunc(func(prefix string) []string {
					var args []string
					for _, item := range predictItems(prefix) {
						args = append(args, item+"=")
					}
					return args
				}),
			},
			"last-order": {},
			"topic": {Args: complete.PredictFunc(func(string) []string {
				topics, err := docs.All()
				if err != nil {
					return nil
				}
				return append(topics, "*")
			})},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}

func predictItems(string) []string {
	l, release, err := openLedger()
	if err != nil {
		log.Printf("cannot open ledger: %v", err)
		return nil
	}
	defer release()
	items, err := l.Items()
	if err != nil {
		log.Printf("cannot list items: %v", err)
		return nil
	}
	return items
}

func predictDates(string) []string {
	l, release, err := openLedger()
	if err != nil {
		log.Printf("cannot open ledger: %v", err)
		return nil
	}
	defer release()
	dates, err := l.Dates()
	if err != nil {
		log.Printf("cannot list dates: %v", err)
		return nil
	}
	res := make([]string, 0, len(dates))
	for _, d := range dates {
		res = append(res, d.String())
	}
	return res
}
