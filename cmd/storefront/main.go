package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"bakery/cmd"
	"bakery/internal/adapters/in/tui"
	"bakery/internal/core/domain/model/draft"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/jobs"

	tea "github.com/charmbracelet/bubbletea"
)

// itemFlags collects repeated -item product_id=quantity values.
type itemFlags []string

func (f *itemFlags) String() string {
	return strings.Join(*f, ",")
}

func (f *itemFlags) Set(v string) error {
	if !strings.Contains(v, "=") {
		return errors.New("expected product_id=quantity")
	}
	*f = append(*f, v)
	return nil
}

func main() {
	runCmd := flag.String("run", "", "run once without the UI: products|order|status")
	name := flag.String("name", "", "customer name for -run order")
	email := flag.String("email", "", "customer email for -run order")
	orderID := flag.String("order", "", "order id for -run status")
	watch := flag.Bool("watch", false, "with -run status, keep polling until the order is completed or failed")
	var items itemFlags
	flag.Var(&items, "item", "order line as product_id=quantity, repeatable")
	flag.Parse()

	configs, err := cmd.LoadConfig()
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	var logOut io.Writer = os.Stderr
	if *runCmd == "" {
		logOut = io.Discard
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: slog.LevelWarn}))

	app, err := cmd.NewStorefrontRoot(configs, logger)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *runCmd {
	case "":
		p := tea.NewProgram(app.CreateTUI(ctx))
		if _, err = p.Run(); err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
		return
	case "products":
		err = runProducts(ctx, &app)
	case "order":
		err = runOrder(ctx, &app, *name, *email, items)
	case "status":
		err = runStatus(ctx, &app, *orderID, *watch)
	default:
		err = fmt.Errorf("unknown -run %q", *runCmd)
	}
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func runProducts(ctx context.Context, app *cmd.StorefrontRoot) error {
	v := app.CreateCatalogView()
	defer v.Close()

	if err := v.Load(ctx); err != nil {
		return errors.New(v.Message())
	}
	for _, p := range v.Catalog().Products() {
		fmt.Printf("%s  %-24s %-10s $%s\n", p.ID(), p.Name(), p.Category(), p.Price())
	}
	return nil
}

func runOrder(ctx context.Context, app *cmd.StorefrontRoot, name, email string, items itemFlags) error {
	form := app.CreateOrderFormView()
	defer form.Close()

	form.SetCustomer(name, email)
	for i, item := range items {
		productID, qty, _ := strings.Cut(item, "=")
		if i > 0 {
			form.AddItem()
		}
		if err := form.UpdateItem(i, draft.FieldProduct, strings.TrimSpace(productID)); err != nil {
			return err
		}
		if err := form.UpdateItem(i, draft.FieldQuantity, strings.TrimSpace(qty)); err != nil {
			return err
		}
	}

	orderID, err := form.Submit(ctx)
	if err != nil {
		return errors.New(form.Message())
	}
	fmt.Println(form.Message())
	fmt.Printf("Order ID: %s\n", orderID)
	return nil
}

func runStatus(ctx context.Context, app *cmd.StorefrontRoot, orderID string, watch bool) error {
	v := app.CreateOrderStatusView()
	defer v.Close()

	record, err := v.Lookup(ctx, orderID)
	if err != nil {
		if msg := v.Message(); msg != "" {
			return errors.New(msg)
		}
		return err
	}
	fmt.Print(tui.RenderRecord(record))
	if !watch || record.IsFinal() {
		return nil
	}

	final := make(chan struct{})
	last := record.Status
	poll := app.CreateStatusPollJob(func(r order.Record) {
		if r.Status != last {
			last = r.Status
			fmt.Printf("\n%s", tui.RenderRecord(r))
		}
		if r.IsFinal() {
			close(final)
		}
	})
	if err = poll.Watch(record.OrderID); err != nil {
		return err
	}

	jobManager := jobs.NewJobManager()
	jobManager.Add("status poll", poll)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	select {
	case <-final:
	case <-ctx.Done():
	}
	return nil
}
