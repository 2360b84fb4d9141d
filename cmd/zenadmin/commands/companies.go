package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
)

const companiesScreenPath = "/dashboard/view-companies"

// CompanyListAction fetches and renders the companies screen.
func CompanyListAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, companiesScreenPath); err != nil {
		return err
	}

	controller := appCtx.Container.Companies
	if err := controller.Load(ctx); err != nil {
		return err
	}

	displayCompaniesTable(controller.Screen().Snapshot())
	return nil
}

// CompanyAddAction submits the add-company form.
func CompanyAddAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, "/dashboard/add-company"); err != nil {
		return err
	}

	draft, err := companyDraftFromFlags(cmd)
	if err != nil {
		return err
	}

	created, err := appCtx.Container.Companies.Create(ctx, draft)
	if err != nil {
		return err
	}

	fmt.Printf("Created company %d: %s\n", created.ID, created.Name)
	return nil
}

// CompanyUpdateAction replaces a company record.
func CompanyUpdateAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, companiesScreenPath); err != nil {
		return err
	}

	draft, err := companyDraftFromFlags(cmd)
	if err != nil {
		return err
	}

	updated, err := appCtx.Container.Companies.Update(ctx, int64(cmd.Int("id")), draft)
	if err != nil {
		return err
	}

	fmt.Printf("Updated company %d: %s\n", updated.ID, updated.Name)
	return nil
}

// CompanyDeleteAction removes a company. If the server rejects the
// delete because jobs still reference it, the conflict toast explains
// that and the exit code is non-zero.
func CompanyDeleteAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, companiesScreenPath); err != nil {
		return err
	}

	if err := appCtx.Container.Companies.Delete(ctx, int64(cmd.Int("id"))); err != nil {
		return err
	}

	fmt.Printf("Deleted company %d\n", cmd.Int("id"))
	return nil
}

// companyDraftFromFlags assembles the submit payload, reading the logo
// file from disk when one is given.
func companyDraftFromFlags(cmd *cli.Command) (domain.CompanyDraft, error) {
	draft := domain.CompanyDraft{
		Name:                     cmd.String("name"),
		Description:              cmd.String("description"),
		Industry:                 domain.Industry(cmd.String("industry")),
		Location:                 cmd.String("location"),
		CommunicationPreferences: cmd.Bool("communication-preferences"),
	}

	if logoPath := cmd.String("logo"); logoPath != "" {
		content, err := os.ReadFile(logoPath)
		if err != nil {
			return domain.CompanyDraft{}, fmt.Errorf("failed to read logo file: %w", err)
		}
		draft.Logo = &domain.Attachment{
			Filename: filepath.Base(logoPath),
			Content:  content,
		}
	}

	return draft, nil
}

// displayCompaniesTable renders the company snapshot.
func displayCompaniesTable(companies []domain.Company) {
	if len(companies) == 0 {
		fmt.Println("No companies found.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Industry", "Location", "Jobs")

	for _, company := range companies {
		table.Append(
			fmt.Sprintf("%d", company.ID),
			company.Name,
			string(company.Industry),
			company.Location,
			fmt.Sprintf("%d", len(company.Jobs)),
		)
	}

	table.Render()
}
