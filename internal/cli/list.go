package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rogerio-castellano/lims-tracker/internal/client"
	"github.com/rogerio-castellano/lims-tracker/internal/models"
	repo "github.com/rogerio-castellano/lims-tracker/internal/repo"
	"github.com/spf13/cobra"
)

// lister fetches one resource and renders it as JSON-able data and a text table.
type lister func(ctx context.Context, c *client.Client) (any, *table, error)

var listers = map[string]lister{
	"samples": func(ctx context.Context, c *client.Client) (any, *table, error) {
		samples, err := c.ListSamples(ctx)
		t := &table{header: []string{"ID", "PRODUCT", "STAGE", "QUANTITY", "TYPE", "RECEIVED"}}
		for _, s := range samples {
			t.add(s.ID, s.ProductName, s.ProductStage, s.Quantity, s.SampleType.Label(), s.TimeReceived.Format("2006-01-02 15:04"))
		}
		return samples, t, err
	},
	"locations": func(ctx context.Context, c *client.Client) (any, *table, error) {
		locations, err := c.ListLocations(ctx)
		t := &table{header: []string{"ID", "TYPE", "ROOM"}}
		for _, l := range locations {
			typ := "—"
			if l.LocationType != nil {
				typ = *l.LocationType
			}
			t.add(l.ID, typ, l.RoomNumber)
		}
		return locations, t, err
	},
	"warehouses": func(ctx context.Context, c *client.Client) (any, *table, error) {
		warehouses, err := c.ListWarehouses(ctx)
		t := &table{header: []string{"ID", "FACILITY", "COMPANY", "TECHNICIAN", "SOP"}}
		for _, w := range warehouses {
			t.add(w.ID, w.WarehouseFacility, w.WarehouseCompany, w.WarehouseTechnician, w.SOPID)
		}
		return warehouses, t, err
	},
	"equipment": func(ctx context.Context, c *client.Client) (any, *table, error) {
		equipment, err := c.ListEquipment(ctx)
		t := &table{header: []string{"ID", "NAME", "MIN", "MAX", "IN USE"}}
		for _, e := range equipment {
			t.add(e.ID, e.EquipmentName, e.MinUseRange, e.MaxUseRange, yesNo(e.InUse))
		}
		return equipment, t, err
	},
	"sops": func(ctx context.Context, c *client.Client) (any, *table, error) {
		sops, err := c.ListSOPs(ctx)
		t := &table{header: []string{"ID", "NAME", "VERSION", "EFFECTIVE"}}
		for _, s := range sops {
			t.add(s.ID, s.SOPName, s.VersionNumber.StringFixed(1), s.EffectiveDate)
		}
		return sops, t, err
	},
	"version-changes": func(ctx context.Context, c *client.Client) (any, *table, error) {
		changes, err := c.ListVersionChanges(ctx)
		t := &table{header: []string{"ID", "SOP", "OLD VERSION", "NEW VERSION", "OLD DATE", "NEW DATE", "CHANGED"}}
		for _, vc := range changes {
			t.add(vc.ID, vc.SOPID, vc.OldVersionNumber.StringFixed(1), vc.NewVersionNumber.StringFixed(1), vc.OldEffectiveDate, vc.NewEffectiveDate, vc.ChangeDate)
		}
		return changes, t, err
	},
	"users": func(ctx context.Context, c *client.Client) (any, *table, error) {
		users, err := c.ListUsers(ctx)
		t := &table{header: []string{"ID", "USERNAME", "NAME", "EMAIL", "DEPARTMENT"}}
		for _, u := range users {
			t.add(u.ID, u.AccountUsername, strings.TrimSpace(u.FirstName+" "+u.LastName), u.Email, u.Department)
		}
		return users, t, err
	},
	"tests": func(ctx context.Context, c *client.Client) (any, *table, error) {
		tests, err := c.ListTests(ctx)
		t := &table{header: []string{"ID", "USER", "SOP", "MIN", "MAX"}}
		for _, test := range tests {
			t.add(test.ID, test.UserAccountID, test.SOPID, bound(test.MinAcceptableResult), bound(test.MaxAcceptableResult))
		}
		return tests, t, err
	},
	"results": func(ctx context.Context, c *client.Client) (any, *table, error) {
		results, err := c.ListResults(ctx, repo.ResultFilter{})
		return results, resultTable(results), err
	},
	"maintenance-logs": func(ctx context.Context, c *client.Client) (any, *table, error) {
		logs, err := c.ListMaintenanceLogs(ctx)
		t := &table{header: []string{"ID", "EQUIPMENT", "SERVICED", "INTERVAL", "NEXT"}}
		for _, m := range logs {
			t.add(m.ID, m.EquipmentID, m.ServiceDate, m.ServiceInterval, m.NextServiceDate)
		}
		return logs, t, err
	},
	"reagents": func(ctx context.Context, c *client.Client) (any, *table, error) {
		reagents, err := c.ListReagents(ctx)
		t := &table{header: []string{"ID", "NAME", "CAS", "LOT", "VENDOR", "EXPIRES"}}
		for _, r := range reagents {
			t.add(r.ID, r.ReagentName, r.CASNumber, r.LotNumber, r.Vendor, r.ExpirationDate)
		}
		return reagents, t, err
	},
	"test-reagent-links": func(ctx context.Context, c *client.Client) (any, *table, error) {
		links, err := c.ListTestReagentLinks(ctx)
		t := &table{header: []string{"ID", "TEST", "REAGENT", "VOLUME"}}
		for _, l := range links {
			t.add(l.ID, l.TestID, l.ReagentID, l.VolumeUsed)
		}
		return links, t, err
	},
	"test-equipment-links": func(ctx context.Context, c *client.Client) (any, *table, error) {
		links, err := c.ListTestEquipmentLinks(ctx)
		t := &table{header: []string{"ID", "TEST", "EQUIPMENT"}}
		for _, l := range links {
			t.add(l.ID, l.TestID, l.EquipmentID)
		}
		return links, t, err
	},
}

func resourceNames() []string {
	names := make([]string, 0, len(listers))
	for name := range listers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "list <resource>",
		Short:     "List records of a resource",
		Long:      "List records of a resource in id order. Resources: " + strings.Join(resourceNames(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: resourceNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			fetch, ok := listers[args[0]]
			if !ok {
				return fmt.Errorf("unknown resource %q: must be one of %s", args[0], strings.Join(resourceNames(), ", "))
			}

			data, t, err := fetch(cmd.Context(), rootOpts.client())
			if err != nil {
				return fmt.Errorf("list %s: %w", args[0], err)
			}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), data)
			}
			return t.write(cmd.OutOrStdout())
		},
	}
}

func resultTable(results []models.Result) *table {
	t := &table{header: []string{"ID", "SAMPLE", "TEST", "RESULT", "PASS", "DEADLINE"}}
	for _, r := range results {
		t.add(r.ID, r.SampleID, r.TestID, r.TestResult, yesNo(r.PassOrFail), r.Deadline.Format("2006-01-02 15:04"))
	}
	return t
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
