package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"vcard_phone_tools/internal/vcard"
	"vcard_phone_tools/platform/apperr"
	"vcard_phone_tools/platform/config"
	"vcard_phone_tools/platform/logger"
	"vcard_phone_tools/platform/validator"
)

type options struct {
	InputPath    string `validate:"required"`
	OutputPath   string `validate:"required"`
	Region       string `validate:"required,region"`
	PreserveType bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)

	region := flag.String("region", cfg.DefaultRegion,
		"default region for numbers without a country code (ISO 3166-1 alpha-2)")
	preserveType := flag.Bool("preserve-type", cfg.PreserveTelType,
		"keep an existing ;TYPE= annotation on rewritten TEL lines")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	opts := options{
		InputPath:    flag.Arg(0),
		OutputPath:   flag.Arg(1),
		Region:       strings.ToUpper(*region),
		PreserveType: *preserveType,
	}

	if err := validator.New().Struct(opts); err != nil {
		log.Error("invalid options", "error", err)
		os.Exit(apperr.Validation("invalid options").ExitCode())
	}

	rw := &vcard.Rewriter{
		DefaultRegion: opts.Region,
		PreserveType:  opts.PreserveType,
	}

	stats, err := rw.ProcessFile(opts.InputPath, opts.OutputPath)
	if err != nil {
		log.FileError("process", opts.InputPath, err)
		os.Exit(apperr.ExitCodeFor(err))
	}

	log.RewriteSummary(opts.InputPath, opts.OutputPath,
		stats.Lines, stats.Matched, stats.Rewritten, stats.Alternates)
	fmt.Printf("vCard processed and saved to %s\n", opts.OutputPath)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"usage: vcard-phone [flags] input.vcf output.vcf\n\n"+
			"Rewrites TEL lines to international format. Brazilian mobile numbers\n"+
			"additionally get a legacy TEL line without the ninth digit.\n\n")
	flag.PrintDefaults()
}
