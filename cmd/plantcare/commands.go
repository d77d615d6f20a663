package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/HammerMeetNail/plantcare/internal/logging"
	"github.com/HammerMeetNail/plantcare/internal/models"
	"github.com/HammerMeetNail/plantcare/internal/services"
	"github.com/HammerMeetNail/plantcare/internal/validation"
)

type cliOptions struct {
	asJSON   bool
	logLevel string
	advisor  *services.AdvisorService
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "plantcare",
		Short: "Rule-based plant nourishment and care plan recommendations",
		Long: `plantcare evaluates the same rules as the web forms.

Examples:
  plantcare nourish --species tomato --soil clay --light low --health unhealthy
  plantcare care-plan --plant-type vine --location indoor --soil loam --light medium --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := logging.New().SetFormat("console", cmd.ErrOrStderr()).SetLevel(logging.ParseLevel(opts.logLevel))
			opts.advisor = services.NewAdvisorService(logger)
		},
	}
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "log level (debug, info, warn, error)")

	root.AddCommand(
		newNourishCmd(opts),
		newCarePlanCmd(opts),
		newRulesCmd(opts),
		newOptionsCmd(opts),
	)
	return root
}

func newNourishCmd(opts *cliOptions) *cobra.Command {
	var species, soil, light, health string

	cmd := &cobra.Command{
		Use:   "nourish",
		Short: "Recommend nourishment for a plant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.advisor.Nourish(context.Background(), models.NourishmentInput{
				Species:         models.Species(species),
				SoilType:        models.SoilType(soil),
				LightConditions: models.LightLevel(light),
				HealthStatus:    models.HealthStatus(health),
			})
			if err != nil {
				return describeError(err)
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, result)
			}
			if len(result.Recommendations) == 0 {
				fmt.Fprintln(out, "No recommendations.")
				return nil
			}
			for _, r := range result.Recommendations {
				fmt.Fprintf(out, "- %s\n", r)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&species, "species", "", "plant species ("+values(models.AllSpecies)+")")
	cmd.Flags().StringVar(&soil, "soil", "", "soil type ("+values(models.AllSoilTypes)+")")
	cmd.Flags().StringVar(&light, "light", "", "light conditions ("+values(models.AllLightLevels)+")")
	cmd.Flags().StringVar(&health, "health", "", "health status ("+values(models.AllHealthStatuses)+")")
	return cmd
}

func newCarePlanCmd(opts *cliOptions) *cobra.Command {
	var plantType, location, soil, light string

	cmd := &cobra.Command{
		Use:   "care-plan",
		Short: "Build a care plan for a plant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := opts.advisor.PlanCare(context.Background(), models.CareInput{
				PlantType:       models.PlantType(plantType),
				Location:        models.Location(location),
				SoilType:        models.GardenSoil(soil),
				LightConditions: models.LightLevel(light),
			})
			if err != nil {
				return describeError(err)
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, plan)
			}
			fmt.Fprintf(out, "Fertilizer:        %s\n", plan.Fertilizer)
			fmt.Fprintf(out, "Watering Schedule: %s\n", plan.WateringSchedule)
			fmt.Fprintf(out, "Care Tips:         %s\n", plan.CareTips)
			return nil
		},
	}

	cmd.Flags().StringVar(&plantType, "plant-type", "", "plant type ("+values(models.AllPlantTypes)+")")
	cmd.Flags().StringVar(&location, "location", "", "location ("+values(models.AllLocations)+")")
	cmd.Flags().StringVar(&soil, "soil", "", "soil type ("+values(models.AllGardenSoils)+")")
	cmd.Flags().StringVar(&light, "light", "", "light conditions ("+values(models.AllLightLevels)+")")
	return cmd
}

func newRulesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the rule tables behind both forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := opts.advisor.Rules()
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, tables)
			}

			fmt.Fprintln(out, "Nourishment")
			for _, r := range tables.Nourishment {
				fmt.Fprintf(out, "  %-16s %-10s %s\n", r.Category, r.Value, ruleText(r.Text))
			}
			fmt.Fprintln(out, "Care plan")
			for _, r := range tables.CarePlan {
				fmt.Fprintf(out, "  %-16s %-10s %s\n", r.Category, r.Value, ruleText(r.Text))
			}
			return nil
		},
	}
}

func newOptionsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the accepted values for every field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := opts.advisor.Options()
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, options)
			}

			printFields(out, "Nourishment", options.Nourishment)
			printFields(out, "Care plan", options.CarePlan)
			return nil
		},
	}
}

func printFields(out io.Writer, title string, fields []models.Field) {
	fmt.Fprintln(out, title)
	for _, f := range fields {
		vals := make([]string, 0, len(f.Options))
		for _, o := range f.Options {
			vals = append(vals, o.Value)
		}
		fmt.Fprintf(out, "  %-16s %s\n", f.Name, strings.Join(vals, ", "))
	}
}

func ruleText(text string) string {
	if text = strings.TrimSpace(text); text == "" {
		return "(no advice)"
	}
	return text
}

// describeError turns a validation failure into one line per field, sorted
// by field name.
func describeError(err error) error {
	var verr *validation.RequestValidationError
	if !errors.As(err, &verr) {
		return err
	}

	fields := verr.Fields()
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fields[name])
	}
	return fmt.Errorf("invalid input:\n  %s", strings.Join(lines, "\n  "))
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func values[T ~string](all []T) string {
	s := make([]string, 0, len(all))
	for _, v := range all {
		s = append(s, string(v))
	}
	return strings.Join(s, ", ")
}
