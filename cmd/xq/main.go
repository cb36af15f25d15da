package main

import (
	"errors"
	"os"

	"github.com/jacoelho/xq"
	xqerrors "github.com/jacoelho/xq/errors"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps failures to exit statuses: 1 for query and document
// failures, 2 for usage errors.
func exitCode(err error) int {
	if _, ok := xqerrors.AsQuery(err); ok {
		return 1
	}
	if errors.Is(err, xq.ErrInvalidPath) || errors.Is(err, errDocument) {
		return 1
	}
	return 2
}
