// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/umlkit/umlkit/internal/export"
	"github.com/umlkit/umlkit/internal/logging"
	"github.com/umlkit/umlkit/internal/model"
	"github.com/umlkit/umlkit/internal/observability"
	"github.com/umlkit/umlkit/pkg/errutil"
)

// attribute is a name/type pair for demo class construction.
type attribute struct {
	name     string
	typeName string
}

// operation describes a demo operation: name, return type ("" for none),
// and input parameters.
type operation struct {
	name       string
	returnType string
	params     []attribute
}

// NewDemoCmd creates the demo subcommand. It builds the online-store
// class model, projects it onto a diagram, and writes a YAML snapshot.
func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build the online-store demo model and write a snapshot",
		Long: `Build an example object-oriented model (classes with attributes and
operations, associations, a generalization), project every element onto
a class diagram, and write the model as a YAML snapshot document.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := LoadConfig(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			logger := logging.New(logging.Options{
				Service: "umlkit",
				Version: cmd.Root().Version,
				Level:   cfg.Log.Level,
				Format:  cfg.Log.Format,
			})
			if err := runDemo(cfg, logger); err != nil {
				errutil.LogError(logger, "demo failed", err)
				return err
			}
			cmd.Printf("Snapshot written to: %s\n", cfg.Output)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "snapshot output path")
	cmd.Flags().String("metrics-addr", "", "serve metrics/health on this address while the demo runs")

	return cmd
}

func runDemo(cfg Config, logger *slog.Logger) error {
	var opts []model.Option

	if cfg.Metrics.Addr != "" {
		srv := observability.NewServer(cfg.Metrics.Addr, nil)
		if _, err := srv.Start(); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Stop(ctx); err != nil {
				errutil.LogError(logger, "stop observability server", err)
			}
		}()
		opts = append(opts, model.WithInstrumentation(srv.Metrics()))
	}

	f := model.NewFactory(model.NewStore(), opts...)

	pkg := f.CreatePackage()
	pkg.SetName("OnlineStore")

	user, err := createDemoClass(f, "User",
		[]attribute{
			{"id", "int"},
			{"username", "string"},
			{"email", "string"},
			{"passwordHash", "string"},
		},
		[]operation{
			{"login", "bool", []attribute{{"password", "string"}}},
			{"logout", "", nil},
			{"updateProfile", "", []attribute{{"email", "string"}}},
		})
	if err != nil {
		return err
	}

	product, err := createDemoClass(f, "Product",
		[]attribute{
			{"id", "int"},
			{"name", "string"},
			{"description", "string"},
			{"price", "decimal"},
			{"stockQuantity", "int"},
		},
		[]operation{
			{"updateStock", "", []attribute{{"quantity", "int"}}},
			{"getDiscountedPrice", "decimal", []attribute{{"discount", "float"}}},
		})
	if err != nil {
		return err
	}

	order, err := createDemoClass(f, "Order",
		[]attribute{
			{"id", "int"},
			{"orderDate", "datetime"},
			{"status", "string"},
			{"totalAmount", "decimal"},
		},
		[]operation{
			{"calculateTotal", "decimal", nil},
			{"updateStatus", "", []attribute{{"status", "string"}}},
			{"cancel", "bool", nil},
		})
	if err != nil {
		return err
	}

	orderItem, err := createDemoClass(f, "OrderItem",
		[]attribute{
			{"quantity", "int"},
			{"unitPrice", "decimal"},
		},
		[]operation{
			{"getSubtotal", "decimal", nil},
		})
	if err != nil {
		return err
	}

	cart, err := createDemoClass(f, "ShoppingCart",
		[]attribute{
			{"createdAt", "datetime"},
		},
		[]operation{
			{"addItem", "", []attribute{{"product", "Product"}, {"quantity", "int"}}},
			{"removeItem", "", []attribute{{"product", "Product"}}},
			{"checkout", "Order", nil},
			{"getTotal", "decimal", nil},
		})
	if err != nil {
		return err
	}

	admin, err := createDemoClass(f, "Admin",
		[]attribute{
			{"adminLevel", "int"},
		},
		[]operation{
			{"manageProducts", "", nil},
			{"viewReports", "", nil},
		})
	if err != nil {
		return err
	}

	logger.Info("created classes",
		"names", []string{"User", "Product", "Order", "OrderItem", "ShoppingCart", "Admin"})

	// Admin inherits from User.
	if _, err := model.CreateGeneralization(f, user, admin); err != nil {
		return err
	}
	logger.Info("created generalization", "general", "User", "specific", "Admin")

	associations := []struct {
		a, b       *model.Class
		endA, endB string
	}{
		{user, order, "orders", "customer"},
		{user, cart, "cart", "owner"},
		{order, orderItem, "items", "order"},
		{orderItem, product, "product", "orderItems"},
		{cart, product, "products", "carts"},
	}
	assocs := make([]*model.Association, 0, len(associations))
	for _, spec := range associations {
		assoc, err := model.CreateAssociation(f, spec.a, spec.b)
		if err != nil {
			return err
		}
		ends := assoc.MemberEnds().Items()
		ends[0].SetName(spec.endA)
		ends[1].SetName(spec.endB)
		assocs = append(assocs, assoc)
		logger.Info("created association", "a", spec.a.Name(), "b", spec.b.Name())
	}

	diagram := f.CreateDiagram()
	diagram.SetName("Online Store Class Diagram")

	drops := []struct {
		subject model.Element
		x, y    float64
	}{
		{user, 100, 50},
		{admin, 100, 300},
		{cart, 400, 50},
		{order, 400, 300},
		{product, 700, 50},
		{orderItem, 700, 300},
	}
	for _, d := range drops {
		if _, err := model.Drop(f, d.subject, diagram, d.x, d.y); err != nil {
			return err
		}
	}
	logger.Info("added classes to diagram", "diagram", diagram.Name())

	for _, assoc := range assocs {
		if _, err := model.Drop(f, assoc, diagram, 0, 0); err != nil {
			return err
		}
	}
	logger.Info("added associations to diagram")

	gen, err := model.One[*model.Generalization](f)
	if err != nil {
		return err
	}
	if _, err := model.Drop(f, gen, diagram, 0, 0); err != nil {
		return err
	}
	logger.Info("added generalization to diagram")

	out, err := os.Create(cfg.Output)
	if err != nil {
		return oops.With("path", cfg.Output).Wrapf(err, "create output file")
	}
	defer out.Close() //nolint:errcheck // close error surfaced by EncodeYAML flush below

	if err := export.Snapshot(f).EncodeYAML(out); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return oops.With("path", cfg.Output).Wrapf(err, "close output file")
	}

	logger.Info("model summary",
		"classes", count(model.Select[*model.Class](f)),
		"associations", count(model.Select[*model.Association](f)),
		"generalizations", count(model.Select[*model.Generalization](f)),
		"diagrams", count(model.Select[*model.Diagram](f)),
		"presentations", diagram.OwnedPresentations().Len(),
	)
	return nil
}

// createDemoClass creates a class with the given attributes and operations.
func createDemoClass(f *model.Factory, name string, attrs []attribute, ops []operation) (*model.Class, error) {
	if err := model.ValidateName(name); err != nil {
		return nil, err
	}
	cls := f.CreateClass()
	cls.SetName(name)

	for _, a := range attrs {
		attr := f.CreateProperty()
		attr.SetName(a.name)
		attr.SetTypeName(a.typeName)
		if err := cls.OwnedAttributes().Append(attr); err != nil {
			return nil, err
		}
	}

	for _, o := range ops {
		op := f.CreateOperation()
		op.SetName(o.name)

		if o.returnType != "" {
			ret := f.CreateParameter()
			ret.SetTypeName(o.returnType)
			if err := op.SetReturnParameter(ret); err != nil {
				return nil, err
			}
		}

		for _, p := range o.params {
			param := f.CreateParameter()
			param.SetName(p.name)
			param.SetTypeName(p.typeName)
			if err := param.SetDirection(model.DirectionIn); err != nil {
				return nil, err
			}
			if err := op.OwnedParameters().Append(param); err != nil {
				return nil, err
			}
		}

		if err := cls.OwnedOperations().Append(op); err != nil {
			return nil, err
		}
	}
	return cls, nil
}

func count[E model.Element](seq func(func(E) bool)) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
