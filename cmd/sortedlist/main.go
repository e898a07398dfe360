// Command sortedlist builds a sorted list from its arguments (or stdin, one value per
// line) and prints it.
//
//	sortedlist 3 1 2                      # [1, 2, 3]
//	sortedlist --type natural f10 f2      # [f2, f10]
//	sortedlist --remove 2 --format json 1 2 3
//	sortedlist --get 1 5 3 8              # 5
package main

import (
	"os"

	"github.com/amp-labs/sortedlist/logger"
)

func main() {
	if err := newApp(nil).command().Execute(); err != nil {
		logger.Get().Error("sortedlist failed", "error", err)
		os.Exit(1)
	}
}
