package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
)

const applicationsScreenPath = "/dashboard/view-applications"

// ApplicationListAction fetches and renders the applications screen.
func ApplicationListAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, applicationsScreenPath); err != nil {
		return err
	}

	controller := appCtx.Container.Applications
	if err := controller.Load(ctx); err != nil {
		return err
	}

	displayApplicationsTable(controller.Screen().Snapshot())
	return nil
}

// ApplicationStatusAction moves an application through the review
// pipeline via the dedicated status endpoint.
func ApplicationStatusAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, applicationsScreenPath); err != nil {
		return err
	}

	updated, err := appCtx.Container.Applications.SetStatus(ctx,
		int64(cmd.Int("id")),
		domain.ApplicationStatus(cmd.String("status")),
	)
	if err != nil {
		return err
	}

	fmt.Printf("Application %d is now %s\n", updated.ID, updated.Status)
	return nil
}

// displayApplicationsTable renders the applications snapshot.
func displayApplicationsTable(applications []domain.Application) {
	if len(applications) == 0 {
		fmt.Println("No applications found.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Applicant", "Email", "Job", "Applied", "Status")

	for _, app := range applications {
		table.Append(
			fmt.Sprintf("%d", app.ID),
			app.Applicant.DisplayName(),
			app.Applicant.Email,
			app.Job.Title,
			app.AppliedAt.Format("2006-01-02"),
			string(app.Status),
		)
	}

	table.Render()
}
