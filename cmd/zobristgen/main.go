package main

import (
	"bufio"
	"log"
	"os"

	"xqbook/internal/config"
	"xqbook/internal/keygen"
)

// usage: zobristgen [go|c] > keys.go
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	lang := keygen.LangGo
	if len(os.Args) > 1 {
		lang, err = keygen.ParseLang(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
	}

	w := bufio.NewWriter(os.Stdout)
	if err := keygen.Render(w, keygen.Generate(cfg.ZobristSeed), lang); err != nil {
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}
