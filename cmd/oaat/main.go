package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"oaat/digest"
	"oaat/pkg/hashkit"
	"oaat/pkg/log"
	"oaat/version"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var errFlag = errors.New("error flags")

func main() {
	app := newApp(os.Stdin, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "oaat: %v\n", err)
		os.Exit(1)
	}
}

// command holds flag destinations and the loaded config of one run.
type command struct {
	in  io.Reader
	out io.Writer

	confPath string
	debug    bool
	logFile  string
	logVl    int

	method string
	length int
	file   bool
	hex    bool
	keys   int
	nodes  cli.StringSlice

	conf *digest.Config
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	cmd := &command{in: in, out: out}

	app := cli.NewApp()
	app.Name = "oaat"
	app.Usage = "Jenkins one-at-a-time hash tool"
	app.Version = version.String()
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "conf,c",
			Usage:       "run with the specific configuration",
			Destination: &cmd.confPath,
		},
		cli.BoolFlag{
			Name:        "debug",
			Usage:       "debug model, will open stdout log. high priority than conf.debug",
			Destination: &cmd.debug,
		},
		cli.StringFlag{
			Name:        "log",
			Usage:       "log will printing file {log}. high priority than conf.log",
			Destination: &cmd.logFile,
		},
		cli.IntFlag{
			Name:        "log-vl",
			Usage:       "log verbose level. high priority than conf.log_vl",
			Destination: &cmd.logVl,
		},
	}
	app.Before = cmd.before
	app.After = func(c *cli.Context) error {
		return log.Close()
	}
	app.Action = cmd.demo

	methodFlag := cli.StringFlag{
		Name:        "method,m",
		Usage:       "hash method, see the methods command. high priority than conf.method",
		Destination: &cmd.method,
	}
	app.Commands = []cli.Command{
		{
			Name:      "sum",
			ShortName: "s",
			Usage:     "hash arguments, files or stdin",
			ArgsUsage: "[key|file]...",
			Flags: []cli.Flag{
				methodFlag,
				cli.IntFlag{
					Name:        "len,n",
					Usage:       "hash only the first n bytes of each key, -1 for all",
					Value:       -1,
					Destination: &cmd.length,
				},
				cli.BoolFlag{
					Name:        "file,f",
					Usage:       "treat arguments as file paths",
					Destination: &cmd.file,
				},
				cli.BoolFlag{
					Name:        "hex,x",
					Usage:       "print digests in hexadecimal",
					Destination: &cmd.hex,
				},
			},
			Action: cmd.sum,
		},
		{
			Name:   "check",
			Usage:  "run the known answer tests, exit non-zero on mismatch",
			Action: cmd.check,
		},
		{
			Name:      "ring",
			ShortName: "r",
			Usage:     "print the ketama ring node owning each key",
			ArgsUsage: "key...",
			Flags: []cli.Flag{
				methodFlag,
				cli.StringSliceFlag{
					Name:  "node",
					Usage: "ring member as name:weight, replaces conf.ring",
					Value: &cmd.nodes,
				},
			},
			Action: cmd.ring,
		},
		{
			Name:  "bench",
			Usage: "hash generated keys and print latency",
			Flags: []cli.Flag{
				methodFlag,
				cli.IntFlag{
					Name:        "keys,k",
					Usage:       "number of keys. high priority than conf.bench.keys",
					Destination: &cmd.keys,
				},
			},
			Action: cmd.bench,
		},
		{
			Name:   "methods",
			Usage:  "list hash methods",
			Action: cmd.methods,
		},
	}
	return app
}

func (cmd *command) before(c *cli.Context) error {
	conf := digest.DefaultConfig()
	if cmd.confPath != "" {
		if err := conf.LoadFromFile(cmd.confPath); err != nil {
			return err
		}
	}
	// high priority start
	if cmd.debug {
		conf.Debug = cmd.debug
	}
	if cmd.logFile != "" {
		conf.Log = cmd.logFile
	}
	if cmd.logVl > 0 {
		conf.LogVL = cmd.logVl
	}
	// high priority end
	log.Init(conf.Config)
	cmd.conf = conf
	return nil
}

// methodName prefers the method flag over conf.method.
func (cmd *command) methodName() string {
	if cmd.method != "" {
		return cmd.method
	}
	return cmd.conf.Method
}

func (cmd *command) demo(c *cli.Context) error {
	key := []byte(digest.DemoKey)
	fmt.Fprintf(cmd.out, "Hash: %d\n", hashkit.OneAtATimeN(key, len(key)))
	return nil
}

func (cmd *command) format(v uint32) string {
	if cmd.hex {
		return fmt.Sprintf("%08x", v)
	}
	return strconv.FormatUint(uint64(v), 10)
}

func (cmd *command) sum(c *cli.Context) error {
	method := cmd.methodName()
	args := c.Args()
	if len(args) == 0 {
		if cmd.file {
			cli.ShowCommandHelp(c, "sum")
			return errFlag
		}
		v, err := digest.SumReader(cmd.in, cmd.length, method)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.out, cmd.format(v))
		return nil
	}
	if cmd.file && cmd.length >= 0 {
		return errors.Wrap(errFlag, "len cannot be used with file")
	}
	for _, arg := range args {
		var (
			v   uint32
			err error
		)
		if cmd.file {
			v, err = digest.SumFile(arg, method)
		} else {
			v, err = digest.Sum([]byte(arg), cmd.length, method)
		}
		if err != nil {
			return err
		}
		log.V(1).Infof("sum %s %q = %d", method, arg, v)
		fmt.Fprintf(cmd.out, "%s\t%s\n", cmd.format(v), arg)
	}
	return nil
}

func (cmd *command) check(c *cli.Context) error {
	return digest.Check(cmd.out)
}

func (cmd *command) ring(c *cli.Context) error {
	conf := *cmd.conf
	conf.Method = cmd.methodName()
	if len(cmd.nodes) > 0 {
		conf.Ring.Nodes, conf.Ring.Spots = nil, nil
		for _, n := range cmd.nodes {
			name, spot, err := parseNode(n)
			if err != nil {
				return err
			}
			conf.Ring.Nodes = append(conf.Ring.Nodes, name)
			conf.Ring.Spots = append(conf.Ring.Spots, spot)
		}
	}
	if len(conf.Ring.Nodes) == 0 || len(c.Args()) == 0 {
		cli.ShowCommandHelp(c, "ring")
		return errFlag
	}
	ring, err := digest.Ring(&conf)
	if err != nil {
		return err
	}
	for _, key := range c.Args() {
		node, _ := ring.GetNode([]byte(key))
		fmt.Fprintf(cmd.out, "%s\t%s\n", key, node)
	}
	return nil
}

func (cmd *command) bench(c *cli.Context) error {
	keys := cmd.conf.Bench.Keys
	if cmd.keys > 0 {
		keys = cmd.keys
	}
	m, err := digest.Bench(keys, cmd.methodName())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.out, "[ %s %d keys ]\ncumulative: %s | min: %s | max: %s\n",
		cmd.methodName(), m.Count, m.Time.Cumulative, m.Time.Min, m.Time.Max)
	return nil
}

func (cmd *command) methods(c *cli.Context) error {
	for _, name := range hashkit.Methods() {
		fmt.Fprintln(cmd.out, name)
	}
	return nil
}

// parseNode parses name:weight, the weight defaults to 1 and must not be negative.
func parseNode(s string) (name string, spot int, err error) {
	idx := strings.LastIndexByte(s, ':')
	if idx < 0 {
		return s, 1, nil
	}
	name = s[:idx]
	if spot, err = strconv.Atoi(s[idx+1:]); err != nil || name == "" || spot < 0 {
		err = errors.Wrapf(errFlag, "node:%s", s)
	}
	return
}
