package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mengelbart/triemap/quictrie"
	"github.com/mengelbart/triemap/remote"
	"github.com/quic-go/quic-go"
	"github.com/urfave/cli/v3"
)

var errMissingArgument = errors.New("missing argument")

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type action func(ctx context.Context, c *remote.Client, args cli.Args, w io.Writer) error

func newCommand(w io.Writer) *cli.Command {
	sub := func(name, usage, argsUsage string, a action) *cli.Command {
		return &cli.Command{
			Name:      name,
			Usage:     usage,
			ArgsUsage: argsUsage,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withClient(ctx, cmd, func(c *remote.Client) error {
					return a(ctx, c, cmd.Args(), w)
				})
			},
		}
	}
	return &cli.Command{
		Name:  "triemap",
		Usage: "query a triemapd server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: "localhost:8080",
				Usage: "server address",
			},
			&cli.BoolFlag{
				Name:  "insecure",
				Usage: "skip TLS certificate verification",
			},
		},
		Commands: []*cli.Command{
			sub("get", "print the value of a key", "<key>", get),
			sub("put", "store a value under a key", "<key> <value>", put),
			sub("del", "remove a key", "<key>", del),
			sub("has-prefix", "report whether any key starts with a prefix", "<prefix>", hasPrefix),
			sub("prefix", "print all entries whose key starts with a prefix", "[prefix]", prefix),
			sub("del-prefix", "remove all entries whose key starts with a prefix", "<prefix>", delPrefix),
			sub("len", "print the number of keys", "", length),
		},
	}
}

func withClient(ctx context.Context, cmd *cli.Command, f func(*remote.Client) error) error {
	conn, err := quic.DialAddr(ctx, cmd.String("addr"), &tls.Config{
		InsecureSkipVerify: cmd.Bool("insecure"),
		NextProtos:         []string{quictrie.NextProto},
	}, &quic.Config{})
	if err != nil {
		return err
	}
	defer conn.CloseWithError(quic.ApplicationErrorCode(remote.ErrorCodeNoError), "")
	return f(remote.NewClient(quictrie.New(conn)))
}

func arg(args cli.Args, i int, name string) (string, error) {
	if args.Len() <= i {
		return "", fmt.Errorf("%w: %v", errMissingArgument, name)
	}
	return args.Get(i), nil
}

func get(ctx context.Context, c *remote.Client, args cli.Args, w io.Writer) error {
	key, err := arg(args, 0, "key")
	if err != nil {
		return err
	}
	v, ok, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("key %q not found", key)
	}
	_, err = fmt.Fprintf(w, "%s\n", v)
	return err
}

func put(ctx context.Context, c *remote.Client, args cli.Args, w io.Writer) error {
	key, err := arg(args, 0, "key")
	if err != nil {
		return err
	}
	value, err := arg(args, 1, "value")
	if err != nil {
		return err
	}
	old, replaced, err := c.Insert(ctx, key, []byte(value))
	if err != nil {
		return err
	}
	if replaced {
		_, err = fmt.Fprintf(w, "replaced %q\n", old)
	}
	return err
}

func del(ctx context.Context, c *remote.Client, args cli.Args, w io.Writer) error {
	key, err := arg(args, 0, "key")
	if err != nil {
		return err
	}
	v, ok, err := c.Remove(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("key %q not found", key)
	}
	_, err = fmt.Fprintf(w, "%s\n", v)
	return err
}

func hasPrefix(ctx context.Context, c *remote.Client, args cli.Args, w io.Writer) error {
	p, err := arg(args, 0, "prefix")
	if err != nil {
		return err
	}
	ok, err := c.StartsWith(ctx, p)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, ok)
	return err
}

func prefix(ctx context.Context, c *remote.Client, args cli.Args, w io.Writer) error {
	kvs, err := c.PrefixMatches(ctx, args.First())
	if err != nil {
		return err
	}
	for _, kv := range kvs {
		if _, err = fmt.Fprintf(w, "%s\t%s\n", kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

func delPrefix(ctx context.Context, c *remote.Client, args cli.Args, w io.Writer) error {
	p, err := arg(args, 0, "prefix")
	if err != nil {
		return err
	}
	kvs, err := c.RemovePrefix(ctx, p)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "removed %d keys\n", len(kvs))
	return err
}

func length(ctx context.Context, c *remote.Client, _ cli.Args, w io.Writer) error {
	n, err := c.Len(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, n)
	return err
}
