package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/comitanigiacomo/kanso-planner/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-planner/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-planner/internal/config"
	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

var Version = "dev"

// Exit codes.
const (
	exitOK         = 0
	exitUserError  = 1
	exitStoreError = 3
)

func main() {
	log.SetOutput(io.Discard)

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// run executes one invocation and always releases the store.
func run(in io.Reader, out, errOut io.Writer, args []string) error {
	root, a := newRootCmd(in, out, errOut)
	root.SetArgs(args)

	err := root.Execute()
	return errors.Join(err, a.close())
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrPersistence), errors.Is(err, errStoreUnavailable):
		return exitStoreError
	default:
		return exitUserError
	}
}

var errStoreUnavailable = errors.New("store unavailable")

// app carries what every subcommand needs once the store is open.
type app struct {
	v       *viper.Viper
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	store   repository.Store
	redis   *redis.Client
	planner *services.Planner
}

func newRootCmd(in io.Reader, out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{v: viper.New(), in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "kanso",
		Short:         "Kanso - habits, a sticker calendar and a to-do list",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Context())
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.String("store", "", "Key-value backend (memory, sqlite, postgres, redis)")
	flags.String("sqlite-path", "", "SQLite database file")
	flags.String("config", "", "Optional YAML config file")

	a.v.SetEnvPrefix("KANSO")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlag("store", flags.Lookup("store"))
	_ = a.v.BindPFlag("sqlite-path", flags.Lookup("sqlite-path"))
	_ = a.v.BindPFlag("config", flags.Lookup("config"))

	root.AddCommand(habitCmd(a))
	root.AddCommand(todoCmd(a))
	root.AddCommand(calendarCmd(a))
	root.AddCommand(statsCmd(a))

	return root, a
}

// loadConfig overlays viper settings (flags, KANSO_* env, config file) on
// the environment configuration.
func (a *app) loadConfig() (*config.Config, error) {
	cfg := config.Load()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if s := a.v.GetString("store"); s != "" {
		cfg.Store.Driver = strings.ToLower(s)
	}
	if p := a.v.GetString("sqlite-path"); p != "" {
		cfg.Store.SQLitePath = p
	}
	if a.v.IsSet("seed") {
		cfg.Planner.Seed = a.v.GetBool("seed")
	}
	if f := a.v.GetString("seed-file"); f != "" {
		cfg.Planner.SeedFile = f
	}
	if tz := a.v.GetString("timezone"); tz != "" {
		cfg.Planner.Timezone = tz
	}

	return cfg, nil
}

func (a *app) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	if cfg.Redis.Enabled(cfg.Store.Driver) {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil && cfg.Store.Driver == config.StoreRedis {
			return fmt.Errorf("%w: %w", errStoreUnavailable, err)
		}
		a.redis = rdb
	}

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	store, err := repository.OpenStore(openCtx, cfg, a.redis)
	if err != nil {
		return fmt.Errorf("%w: %w", errStoreUnavailable, err)
	}
	a.store = store

	loc, err := cfg.Planner.Location()
	if err != nil {
		return err
	}

	opts := []services.PlannerOption{
		services.WithClock(func() time.Time { return time.Now().In(loc) }),
	}
	switch {
	case !cfg.Planner.Seed:
		opts = append(opts, services.WithSeed(nil))
	case cfg.Planner.SeedFile != "":
		seed, err := services.LoadSeedFile(cfg.Planner.SeedFile)
		if err != nil {
			return err
		}
		opts = append(opts, services.WithSeed(seed))
	}

	a.planner = services.NewPlanner(repository.NewCollectionRepository(store), opts...)
	if err := a.planner.Load(openCtx); err != nil && !errors.Is(err, domain.ErrPersistence) {
		return err
	}
	return nil
}

func (a *app) close() error {
	var errs []error
	if a.store != nil {
		errs = append(errs, a.store.Close())
		a.store = nil
	}
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
		a.redis = nil
	}
	return errors.Join(errs...)
}
