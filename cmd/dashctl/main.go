// dashctl consulta o painel semanal da Hageland pelo terminal
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}
