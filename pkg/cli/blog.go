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
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mengxi-ream/read-frog-server/pkg/api"
	"github.com/mengxi-ream/read-frog-server/pkg/blog"
	"github.com/mengxi-ream/read-frog-server/pkg/compat"
	"github.com/mengxi-ream/read-frog-server/pkg/defaults"
)

func blogCmd() *cli.Command {
	return &cli.Command{
		Name:  "blog",
		Usage: "Query blog posts",
		Description: `Read posts from the compiled-in content, a content directory (--content)
or a remote JSON index (--index-url). The index takes precedence.`,
		Commands: []*cli.Command{
			blogLatestCmd(),
			blogListCmd(),
			blogIndexCmd(),
		},
	}
}

func localeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "locale",
		Aliases: []string{"l"},
		Usage:   "Post locale (default: first of --locales)",
	}
}

// sourceFlags are shared by every blog subcommand.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "locales",
			Value:   strings.Join(blog.DefaultLocales, ","),
			Usage:   "Comma-separated list of served locales",
			Sources: cli.EnvVars(api.EnvLocales),
		},
		&cli.StringFlag{
			Name:    "content",
			Usage:   "Directory with <locale>/*.mdx posts",
			Sources: cli.EnvVars(api.EnvContentDir),
		},
		&cli.StringFlag{
			Name:    "index-url",
			Usage:   "URL of a JSON or YAML post index",
			Sources: cli.EnvVars(api.EnvIndexURL),
		},
		outputFlag(),
		formatFlag(),
	}
}

func blogLatestCmd() *cli.Command {
	flags := append(sourceFlags(),
		localeFlag(),
		&cli.StringFlag{
			Name:    "extension-version",
			Aliases: []string{"e"},
			Usage:   "Extension version to filter by (e.g., 1.4.0); empty disables filtering",
		},
		&cli.StringFlag{
			Name:    "policy",
			Value:   compat.FailOpen.String(),
			Usage:   fmt.Sprintf("Handling of malformed version requirements (supported values: %s)", strings.Join(compat.SupportedPolicies(), ", ")),
			Sources: cli.EnvVars(api.EnvCompatPolicy),
		},
	)

	return &cli.Command{
		Name:  "latest",
		Usage: "Show the most recent post an extension version can display",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			policy, err := compat.ParsePolicy(cmd.String("policy"))
			if err != nil {
				return err
			}

			svc, err := newBlogService(cmd, blog.WithPolicy(policy))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIRequestTimeout)
			defer cancel()

			post, err := svc.Latest(ctx, cmd.String("locale"), cmd.String("extension-version"))
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, post)
		},
	}
}

func blogListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List posts, most recent first",
		Flags: append(sourceFlags(), localeFlag()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := newBlogService(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIRequestTimeout)
			defer cancel()

			posts, err := svc.List(ctx, cmd.String("locale"))
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, posts)
		},
	}
}

func blogIndexCmd() *cli.Command {
	return &cli.Command{
		Name:  "index",
		Usage: "Write a post index for --index-url consumers",
		Description: `Collect the posts of every locale into a BlogIndex document. Serve the
file over HTTP and point BLOG_INDEX_URL (or --index-url) at it.
The URL must end in .yaml or .yml for YAML output; anything else is read as JSON.`,
		Flags: sourceFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := newBlogService(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIRequestTimeout)
			defer cancel()

			idx, err := svc.Index(ctx, version)
			if err != nil {
				return err
			}
			slog.Debug("blog index built", "posts", len(idx.Posts))
			return writeOutput(ctx, cmd, idx)
		},
	}
}

func newBlogService(cmd *cli.Command, opts ...blog.Option) (*blog.Service, error) {
	locales, err := blog.ParseLocales(cmd.String("locales"))
	if err != nil {
		return nil, fmt.Errorf("invalid --locales: %w", err)
	}

	cfg := &api.Config{
		ContentDir:   strings.TrimSpace(cmd.String("content")),
		IndexURL:     strings.TrimSpace(cmd.String("index-url")),
		IndexRefresh: defaults.BlogIndexRefreshTTL,
	}
	src, err := cfg.NewSource()
	if err != nil {
		return nil, err
	}

	return blog.NewService(src, append([]blog.Option{blog.WithLocales(locales)}, opts...)...), nil
}
