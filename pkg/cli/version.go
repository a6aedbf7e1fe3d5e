// Copyright (c) 2025, The Read Frog Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mengxi-ream/read-frog-server/pkg/api"
	ver "github.com/mengxi-ream/read-frog-server/pkg/version"
)

// CheckResult is the output of `frog version check`.
type CheckResult struct {
	Version string `json:"version" yaml:"version"`
	Major   int    `json:"major" yaml:"major"`
	Minor   int    `json:"minor" yaml:"minor"`
	Patch   int    `json:"patch" yaml:"patch"`
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Compare and validate extension versions",
		Description: `Extension versions have exactly three numeric parts (MAJOR.MINOR.PATCH).
A "v" prefix, pre-release tags, build metadata and surrounding whitespace
are rejected.`,
		Commands: []*cli.Command{
			versionCompareCmd(),
			versionCheckCmd(),
		},
	}
}

func versionCompareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two versions",
		ArgsUsage: "<a> <b>",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return fmt.Errorf("expected 2 arguments, got %d", cmd.NArg())
			}
			args := typedArgs(cmd)
			res, err := api.NewCompareResponse(args[0], args[1])
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, res)
		},
	}
}

func versionCheckCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate a version",
		ArgsUsage: "<version>",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("expected 1 argument, got %d", cmd.NArg())
			}
			v, err := ver.Parse(typedArgs(cmd)[0])
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, &CheckResult{
				Version: v.String(),
				Major:   v.Major,
				Minor:   v.Minor,
				Patch:   v.Patch,
			})
		},
	}
}

// typedArgs returns the positional arguments of cmd as they were typed.
// The parser trims surrounding whitespace from positionals but hands the
// parent command the untouched tail, so the originals are recovered from
// there in order.
func typedArgs(cmd *cli.Command) []string {
	parsed := cmd.Args().Slice()
	lineage := cmd.Lineage()
	if len(lineage) < 2 {
		return parsed
	}
	raw := lineage[1].Args().Slice()
	if len(raw) > 0 {
		raw = raw[1:]
	}

	out := make([]string, len(parsed))
	copy(out, parsed)
	i := 0
	for _, tok := range raw {
		if i == len(parsed) {
			break
		}
		if strings.TrimSpace(tok) == parsed[i] {
			out[i] = tok
			i++
		}
	}
	return out
}
