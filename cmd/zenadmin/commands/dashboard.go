package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

// DashboardAction renders the home-screen overview: totals plus the
// most recent jobs and companies.
func DashboardAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, "/dashboard"); err != nil {
		return err
	}

	overview, err := appCtx.Container.Dashboard.Overview(ctx)
	if err != nil {
		return err
	}

	totals := tablewriter.NewWriter(os.Stdout)
	totals.Header("Jobs", "Companies", "Applications", "Categories")
	totals.Append(
		fmt.Sprintf("%d", overview.TotalJobs),
		fmt.Sprintf("%d", overview.TotalCompanies),
		fmt.Sprintf("%d", overview.TotalApplications),
		fmt.Sprintf("%d", overview.TotalCategories),
	)
	totals.Render()

	if len(overview.RecentJobs) > 0 {
		fmt.Println("\nRecent jobs:")
		displayJobsTable(overview.RecentJobs)
	}
	if len(overview.RecentCompanies) > 0 {
		fmt.Println("\nRecent companies:")
		displayCompaniesTable(overview.RecentCompanies)
	}

	return nil
}
