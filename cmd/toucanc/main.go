package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/llir/llvm/ir"
	"github.com/pontaoski/toucan"
	"github.com/pontaoski/toucan/config"
	"github.com/pontaoski/toucan/reader"
	"github.com/pontaoski/toucan/typeinfo"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

func loadConfig() config.Config {
	cfg, err := config.Load(config.FileName)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default("main")
	}
	if err != nil {
		tracerr.PrintSourceColor(err)
		os.Exit(1)
	}
	return cfg
}

func manifest(c *cli.Context) error {
	cfg := loadConfig()
	unit := toucan.NewUnit(cfg)
	if err := unit.Err(); err != nil {
		return err
	}
	doc := typeinfo.Build(cfg.Package, unit.Types)

	var out []byte
	if c.Bool("llvm") {
		m := ir.NewModule()
		m.SourceFilename = cfg.Package
		if _, err := typeinfo.Embed(m, doc); err != nil {
			return err
		}
		typeinfo.DeclareNatives(m, unit.Types)
		out = []byte(m.String())
	} else {
		data, err := doc.Marshal()
		if err != nil {
			return err
		}
		out = data
	}

	if path := c.String("output"); path != "" {
		return ioutil.WriteFile(path, out, 0644)
	}
	_, err := os.Stdout.Write(out)
	return err
}

func main() {
	app := &cli.App{
		Name:  "toucanc",
		Usage: "toucan compiler middle-end",
		ExitErrHandler: func(context *cli.Context, err error) {
			if err != nil {
				log.Fatalf("error with toucanc: %s", err)
			}
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "init a directory",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						fmt.Printf("no module name provided")
						os.Exit(1)
					}
					if err := config.Save(config.FileName, config.Default(name)); err != nil {
						fmt.Printf("%s", err)
						os.Exit(1)
					}
					return nil
				},
			},
			{
				Name:  "manifest",
				Usage: "print the ordinal type manifest of the prelude",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name: "output",
					},
					&cli.BoolFlag{
						Name:  "llvm",
						Value: false,
					},
				},
				Action: manifest,
			},
			{
				Name:  "typeinfo",
				Usage: "dump typeinfo from a compiled module",
				Action: func(c *cli.Context) error {
					file := c.Args().Get(0)
					data, err := reader.ReadSymbol(file, typeinfo.Symbol)
					if err != nil {
						return err
					}
					doc, err := typeinfo.Unmarshal([]byte(data))
					if err != nil {
						return err
					}
					repr.Println(doc)
					return nil
				},
			},
		},
	}
	app.Run(os.Args)
}
