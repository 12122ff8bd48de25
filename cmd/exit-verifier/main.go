// Command exit-verifier verifies validator exit delay proofs against beacon
// block roots supplied in an offline proof bundle.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var log = logrus.WithField("prefix", "exit-verifier")

func main() {
	logrus.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	app := &cli.App{
		Name:  "exit-verifier",
		Usage: "verify validator exit delay proofs against beacon block roots",
		Commands: []*cli.Command{
			verifyCmd,
			gindexCmd,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("App failed")
	}
}
