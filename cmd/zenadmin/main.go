package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/zencareer/zenadmin/cmd/zenadmin/commands"
)

// commonFlags are accepted by every command: where to find the env file
// and the optional YAML config overlay.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "env",
			Usage: "path to the environment file",
			Value: ".env",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to the YAML config file",
		},
	}
}

func withCommon(flags ...cli.Flag) []cli.Flag {
	return append(commonFlags(), flags...)
}

// jobFormFlags mirror the add/edit job form. The API replaces the whole
// posting on update, so add and update take the same set.
func jobFormFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Usage: "job title", Required: true},
		&cli.IntFlag{Name: "company-id", Usage: "employer company id", Required: true},
		&cli.IntFlag{Name: "category-id", Usage: "job category id", Required: true},
		&cli.StringFlag{Name: "salary", Usage: `salary range, e.g. "50000-70000 USD"`, Required: true},
		&cli.StringFlag{Name: "status", Usage: "Open or Closed", Value: "Open"},
		&cli.StringFlag{Name: "schedule", Usage: "work schedule, e.g. Full-time"},
		&cli.StringFlag{Name: "type", Usage: "job type, e.g. On-site"},
		&cli.StringFlag{Name: "location", Usage: "job location", Required: true},
		&cli.StringFlag{Name: "deadline", Usage: "application deadline (YYYY-MM-DD)"},
		&cli.BoolFlag{Name: "health-insurance", Usage: "benefit: health insurance"},
		&cli.BoolFlag{Name: "paid-leave", Usage: "benefit: paid leave"},
		&cli.BoolFlag{Name: "remote-work", Usage: "benefit: remote work"},
		&cli.BoolFlag{Name: "retirement-plan", Usage: "benefit: retirement plan"},
		&cli.StringFlag{Name: "benefits-other", Usage: "free-form extra benefits"},
		&cli.BoolFlag{Name: "resume-required", Usage: "applicants must attach a resume"},
		&cli.BoolFlag{Name: "cover-letter-required", Usage: "applicants must attach a cover letter"},
		&cli.BoolFlag{Name: "featured", Usage: "feature this posting"},
	}
}

// companyFormFlags mirror the add/edit company form.
func companyFormFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "company name", Required: true},
		&cli.StringFlag{Name: "description", Usage: "company description"},
		&cli.StringFlag{Name: "industry", Usage: `industry sector, e.g. "Information Technology"`, Required: true},
		&cli.StringFlag{Name: "location", Usage: "company location", Required: true},
		&cli.BoolFlag{Name: "communication-preferences", Usage: "opt in to email updates"},
		&cli.StringFlag{Name: "logo", Usage: "path to a logo image to upload"},
	}
}

func idFlag() cli.Flag {
	return &cli.IntFlag{Name: "id", Usage: "record id", Required: true}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:  "zenadmin",
		Usage: "admin dashboard for the ZenCareer job board",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "sign in and persist the session",
				Flags: withCommon(
					&cli.StringFlag{Name: "email", Usage: "admin email", Required: true},
					&cli.StringFlag{Name: "password", Usage: "admin password", Required: true},
				),
				Action: commands.LoginAction,
			},
			{
				Name:   "logout",
				Usage:  "clear the persisted session",
				Flags:  commonFlags(),
				Action: commands.LogoutAction,
			},
			{
				Name:   "whoami",
				Usage:  "show the current session",
				Flags:  commonFlags(),
				Action: commands.WhoamiAction,
			},
			{
				Name:  "change-password",
				Usage: "change the admin password",
				Flags: withCommon(
					&cli.StringFlag{Name: "old-password", Usage: "current password", Required: true},
					&cli.StringFlag{Name: "new-password", Usage: "new password", Required: true},
					&cli.StringFlag{Name: "confirm-password", Usage: "new password again", Required: true},
				),
				Action: commands.ChangePasswordAction,
			},
			{
				Name:   "dashboard",
				Usage:  "show totals and recent activity",
				Flags:  commonFlags(),
				Action: commands.DashboardAction,
			},
			{
				Name:  "jobs",
				Usage: "manage job postings",
				Commands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list all job postings",
						Flags:  commonFlags(),
						Action: commands.JobListAction,
					},
					{
						Name:   "add",
						Usage:  "create a job posting",
						Flags:  withCommon(jobFormFlags()...),
						Action: commands.JobAddAction,
					},
					{
						Name:   "update",
						Usage:  "replace a job posting",
						Flags:  withCommon(append(jobFormFlags(), idFlag())...),
						Action: commands.JobUpdateAction,
					},
					{
						Name:  "status",
						Usage: "mark a posting Open or Closed",
						Flags: withCommon(
							idFlag(),
							&cli.StringFlag{Name: "status", Usage: "Open or Closed", Required: true},
						),
						Action: commands.JobStatusAction,
					},
					{
						Name:   "delete",
						Usage:  "delete a job posting",
						Flags:  withCommon(idFlag()),
						Action: commands.JobDeleteAction,
					},
				},
			},
			{
				Name:  "companies",
				Usage: "manage employers",
				Commands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list all companies",
						Flags:  commonFlags(),
						Action: commands.CompanyListAction,
					},
					{
						Name:   "add",
						Usage:  "create a company",
						Flags:  withCommon(companyFormFlags()...),
						Action: commands.CompanyAddAction,
					},
					{
						Name:   "update",
						Usage:  "replace a company",
						Flags:  withCommon(append(companyFormFlags(), idFlag())...),
						Action: commands.CompanyUpdateAction,
					},
					{
						Name:   "delete",
						Usage:  "delete a company",
						Flags:  withCommon(idFlag()),
						Action: commands.CompanyDeleteAction,
					},
				},
			},
			{
				Name:  "categories",
				Usage: "manage job categories",
				Commands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list all categories",
						Flags:  commonFlags(),
						Action: commands.CategoryListAction,
					},
					{
						Name:  "add",
						Usage: "create a category",
						Flags: withCommon(
							&cli.StringFlag{Name: "name", Usage: "category name", Required: true},
						),
						Action: commands.CategoryAddAction,
					},
					{
						Name:  "update",
						Usage: "rename a category",
						Flags: withCommon(
							idFlag(),
							&cli.StringFlag{Name: "name", Usage: "category name", Required: true},
						),
						Action: commands.CategoryUpdateAction,
					},
					{
						Name:   "delete",
						Usage:  "delete a category",
						Flags:  withCommon(idFlag()),
						Action: commands.CategoryDeleteAction,
					},
				},
			},
			{
				Name:  "applications",
				Usage: "review submitted applications",
				Commands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list all applications",
						Flags:  commonFlags(),
						Action: commands.ApplicationListAction,
					},
					{
						Name:  "status",
						Usage: "move an application through the review pipeline",
						Flags: withCommon(
							idFlag(),
							&cli.StringFlag{Name: "status", Usage: "pending, reviewed, accepted or rejected", Required: true},
						),
						Action: commands.ApplicationStatusAction,
					},
				},
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
