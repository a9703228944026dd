package cli

import (
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var logger = commonlog.GetLogger(name)

// configureLog sets the verbosity from 0 (critical only) to 5 (debug).
func configureLog(level *int) {
	var verbosity int
	if level != nil {
		verbosity = *level
	}
	commonlog.Configure(verbosity-4, nil)
}
