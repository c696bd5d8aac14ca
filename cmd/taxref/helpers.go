package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/taxref/internal/common"
	"github.com/Veraticus/taxref/internal/dataset"
	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/query"
)

// newEngine builds a query engine over the compiled-in dataset.
func newEngine() *query.Engine {
	return query.NewEngine(dataset.Income(), dataset.Occupations())
}

// parseKind validates a kind argument.
func parseKind(s string) (model.Kind, error) {
	kind, ok := model.ParseKind(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		return "", common.NewUserError(
			fmt.Sprintf("unknown kind %q (use income or occupation)", s),
			common.ErrInvalidKind,
		)
	}
	return kind, nil
}

// parseKinds validates the --kind flag of search, where "all" selects both.
func parseKinds(s string) ([]model.Kind, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return model.Kinds, nil
	}
	kind, err := parseKind(s)
	if err != nil {
		return nil, err
	}
	return []model.Kind{kind}, nil
}

// joinQuery rebuilds a query that the shell split into words.
func joinQuery(args []string) string {
	return strings.Join(args, " ")
}
