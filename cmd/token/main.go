// Command token mints an access token for a principal using the server's
// secret key and token lifetime, for local testing against the registry.
// Server flags after the principal (-c, -s, -t) are honoured the same way
// the server reads them.
//
// Usage: token <principal> [-c config.json] [-s secret] [-t minutes]
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/songregistry/internal/server/auth"
	"github.com/dmitrijs2005/songregistry/internal/server/config"
)

var errUsage = errors.New("usage: token <principal> [-c config.json] [-s secret] [-t minutes]")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 || args[0] == "" || args[0][0] == '-' {
		return errUsage
	}

	cfg, err := config.LoadConfig(args[1:])
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	tok, err := auth.GenerateToken(args[0], []byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	if err != nil {
		return fmt.Errorf("token: %w", err)
	}
	_, err = fmt.Fprintln(out, tok)
	return err
}
