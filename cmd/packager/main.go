package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	server "hotel_packages/internal/adapters/http_server"
	"hotel_packages/internal/adapters/formfile"
	"hotel_packages/internal/adapters/observability"
	redisad "hotel_packages/internal/adapters/redis"
	"hotel_packages/internal/app"
	"hotel_packages/internal/domain"
	"hotel_packages/internal/shared"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code so deferred cleanup runs before exit.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("packager", flag.ContinueOnError)
	fs.SetOutput(stderr)
	formPath := fs.String("form", "form.yaml", "YAML form to generate packages from")
	copyOut := fs.Bool("copy", false, "also write the copy text to the shared clipboard")
	asHTML := fs.Bool("html", false, "print display markup instead of copy text")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := shared.Load()

	// stdout carries the output; logs go to stderr
	log.Logger = observability.NewLoggerTo(stderr, cfg.AppEnv, cfg.LogLevel)

	form, err := formfile.Load(*formPath)
	if err != nil {
		log.Error().Err(err).Str("form", *formPath).Msg("load form failed")
		return 1
	}

	var cb domain.Clipboard
	if *copyOut {
		c := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.ClipboardTTL)
		defer c.Close()
		cb = c
	}
	g := app.NewGenerator(app.NewFormatter(cfg.CityA, cfg.CityB, cfg.Currency), cb)

	res := g.Generate(form)
	if res.ErrorMessage != nil {
		fmt.Fprintln(stderr, *res.ErrorMessage)
		return 1
	}

	if *copyOut {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		g.Copy(ctx, &res)
		cancel()
		if res.Notice != "" {
			log.Warn().Msg(res.Notice)
		} else {
			log.Info().Str("clip_id", res.ClipID).Msg("copied")
		}
	}

	if *asHTML {
		if err := server.RenderHTML(stdout, res); err != nil {
			log.Error().Err(err).Msg("render html failed")
			return 1
		}
		return 0
	}
	if res.Empty {
		fmt.Fprintln(stderr, res.Message)
		return 1
	}
	fmt.Fprintln(stdout, res.CopyText)
	return 0
}
