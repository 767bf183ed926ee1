package main

import (
	"fmt"
	"os"
)

// @title MediConnect API
// @version 1.0
// @description Historial de visitas hospitalarias, indicadores de salud y preguntas del cuidador.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
