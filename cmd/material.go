package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/studypace/internal/errors"
	"github.com/manav03panchal/studypace/internal/model"
	"github.com/manav03panchal/studypace/internal/output"
	"github.com/manav03panchal/studypace/internal/parser"
	"github.com/manav03panchal/studypace/internal/storage"
	"github.com/manav03panchal/studypace/internal/validate"
)

// Material command flags.
var (
	materialFlagID       string
	materialFlagTotal    int
	materialFlagStart    string
	materialFlagDeadline string
	materialFlagUnit     string
	materialFlagSubject  string
	materialFlagTitle    string
)

// materialCmd represents the material command.
var materialCmd = &cobra.Command{
	Use:     "material",
	Aliases: []string{"materials", "m"},
	Short:   "Manage study materials",
	Long: `Create, list, and edit the study materials being tracked.

Examples:
  studypace material add "Calculus" --total 320 --deadline 'in 6 weeks'
  studypace material list
  studypace material show calculus
  studypace material edit calculus --deadline 2025-12-20
  studypace material delete calculus`,
	RunE: runMaterialList,
}

// materialAddCmd creates a new material.
var materialAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a new study material",
	Long: `Add a material with a total amount of work and a deadline.

The ID defaults to a slug of the title. Dates accept natural language.

Examples:
  studypace material add "Calculus" --total 320 --deadline 2025-12-20
  studypace material add "Kanji deck" --id kanji --total 500 --unit cards --deadline 'in 2 months'
  studypace material add "Physics problems" --total 150 --unit problems --subject physics --start 'next monday' --deadline 'in 6 weeks'`,
	Args: cobra.ExactArgs(1),
	RunE: runMaterialAdd,
}

// materialListCmd lists all materials.
var materialListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all materials",
	RunE:    runMaterialList,
}

// materialShowCmd shows one material.
var materialShowCmd = &cobra.Command{
	Use:   "show MATERIAL_ID",
	Short: "Show a material's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runMaterialShow,
}

// materialEditCmd edits an existing material.
var materialEditCmd = &cobra.Command{
	Use:   "edit MATERIAL_ID",
	Short: "Edit a material",
	Args:  cobra.ExactArgs(1),
	RunE:  runMaterialEdit,
}

// materialDeleteCmd deletes a material.
var materialDeleteCmd = &cobra.Command{
	Use:     "delete MATERIAL_ID",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a material",
	Long: `Delete a material. Its progress history is kept; only the material
record itself is removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runMaterialDelete,
}

func init() {
	materialAddCmd.Flags().StringVar(&materialFlagID, "id", "", "Material ID (defaults to a slug of the title)")
	materialAddCmd.Flags().IntVar(&materialFlagTotal, "total", 0, "Total units of work (required)")
	materialAddCmd.Flags().StringVar(&materialFlagStart, "start", "", "Start date (defaults to today)")
	materialAddCmd.Flags().StringVar(&materialFlagDeadline, "deadline", "", "Deadline date")
	materialAddCmd.Flags().StringVar(&materialFlagUnit, "unit", "pages", "Unit type: pages, problems, chapters, cards")
	materialAddCmd.Flags().StringVar(&materialFlagSubject, "subject", "", "Subject label")

	materialEditCmd.Flags().StringVar(&materialFlagTitle, "title", "", "New title")
	materialEditCmd.Flags().IntVar(&materialFlagTotal, "total", 0, "New total unit count")
	materialEditCmd.Flags().StringVar(&materialFlagStart, "start", "", "New start date")
	materialEditCmd.Flags().StringVar(&materialFlagDeadline, "deadline", "", "New deadline date")
	materialEditCmd.Flags().StringVar(&materialFlagUnit, "unit", "", "New unit type")
	materialEditCmd.Flags().StringVar(&materialFlagSubject, "subject", "", "New subject label")

	materialShowCmd.ValidArgsFunction = completeMaterialArgs
	materialEditCmd.ValidArgsFunction = completeMaterialArgs
	materialDeleteCmd.ValidArgsFunction = completeMaterialArgs

	materialCmd.AddCommand(materialAddCmd)
	materialCmd.AddCommand(materialListCmd)
	materialCmd.AddCommand(materialShowCmd)
	materialCmd.AddCommand(materialEditCmd)
	materialCmd.AddCommand(materialDeleteCmd)
	rootCmd.AddCommand(materialCmd)
}

func runMaterialAdd(cmd *cobra.Command, args []string) error {
	title := args[0]
	if err := validate.Title(title); err != nil {
		return err
	}
	if err := validate.TotalCount(materialFlagTotal); err != nil {
		return err
	}
	if err := validate.UnitType(materialFlagUnit); err != nil {
		return err
	}
	if err := validate.Subject(materialFlagSubject); err != nil {
		return err
	}

	id := materialFlagID
	if id == "" {
		id = slugify(title)
	}
	if err := validate.MaterialID(id); err != nil {
		return err
	}

	start, err := parser.ParseDate(materialFlagStart)
	if err != nil {
		return err
	}

	var deadline time.Time
	if materialFlagDeadline != "" {
		deadline, err = parser.ParseDate(materialFlagDeadline)
		if err != nil {
			return err
		}
	}
	if err := validate.DateOrder(start, deadline); err != nil {
		return err
	}

	ownerKey, err := ctx.OwnerKey()
	if err != nil {
		return err
	}

	exists, err := ctx.MaterialRepo.Exists(ownerKey, id)
	if err != nil {
		return err
	}
	if exists {
		return errors.NewUserErrorWithField("material", id,
			"Material already exists",
			"Pick a different --id or edit the existing material").
			WrapSentinel(errors.ErrMaterialExists)
	}

	m := model.NewMaterial(ownerKey, id, title, materialFlagTotal, start, deadline,
		model.UnitType(materialFlagUnit), materialFlagSubject)
	if err := ctx.MaterialRepo.Create(m); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.NewMaterialOutput(m))
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Added %s (%s)", title, id))
	if m.HasDeadline() {
		cli.Muted(fmt.Sprintf("  %s by %s",
			output.FormatUnits(m.TotalCount, string(m.UnitType)),
			output.FormatDate(m.Deadline)))
	} else {
		cli.Warning("No deadline set; this material will not appear in plans until one is set")
	}
	return nil
}

func runMaterialList(cmd *cobra.Command, args []string) error {
	ownerKey, err := ctx.OwnerKey()
	if err != nil {
		return err
	}

	materials, err := ctx.MaterialRepo.List(ownerKey)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.NewMaterialsResponse(materials))
	}

	cli := ctx.CLIFormatter()
	if len(materials) == 0 {
		cli.Muted("No materials yet. Add one with 'studypace material add'.")
		return nil
	}

	cli.Title("Materials")
	for _, m := range materials {
		bar := cli.ProgressBar(m.PercentDone(), 20)
		cli.Printf("%s  %s  %s\n", cli.MaterialName(m.Title), bar,
			fmt.Sprintf("%d/%d %s", m.Completed, m.TotalCount, m.UnitType))
		if m.HasDeadline() {
			cli.Muted(fmt.Sprintf("  id: %s  deadline: %s", m.ID, output.FormatDate(m.Deadline)))
		} else {
			cli.Muted(fmt.Sprintf("  id: %s  no deadline", m.ID))
		}
	}
	return nil
}

func runMaterialShow(cmd *cobra.Command, args []string) error {
	m, err := getMaterial(args[0])
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.NewMaterialOutput(m))
	}

	cli := ctx.CLIFormatter()
	cli.Title(m.Title)
	cli.Printf("  id:        %s\n", m.ID)
	if m.Subject != "" {
		cli.Printf("  subject:   %s\n", m.Subject)
	}
	cli.Printf("  progress:  %s\n", cli.ProgressBar(m.PercentDone(), 24))
	cli.Printf("  completed: %d/%d %s\n", m.Completed, m.TotalCount, m.UnitType)
	if !m.StartDate.IsZero() {
		cli.Printf("  start:     %s\n", output.FormatDate(m.StartDate))
	}
	if m.HasDeadline() {
		cli.Printf("  deadline:  %s\n", output.FormatDate(m.Deadline))
	} else {
		cli.Muted("  no deadline")
	}
	return nil
}

func runMaterialEdit(cmd *cobra.Command, args []string) error {
	m, err := getMaterial(args[0])
	if err != nil {
		return err
	}

	if materialFlagTitle != "" {
		if err := validate.Title(materialFlagTitle); err != nil {
			return err
		}
		m.Title = materialFlagTitle
	}
	if materialFlagTotal != 0 {
		if err := validate.TotalCount(materialFlagTotal); err != nil {
			return err
		}
		m.TotalCount = materialFlagTotal
	}
	if materialFlagUnit != "" {
		if err := validate.UnitType(materialFlagUnit); err != nil {
			return err
		}
		m.UnitType = model.UnitType(materialFlagUnit)
	}
	if materialFlagSubject != "" {
		if err := validate.Subject(materialFlagSubject); err != nil {
			return err
		}
		m.Subject = materialFlagSubject
	}
	if materialFlagStart != "" {
		start, err := parser.ParseDate(materialFlagStart)
		if err != nil {
			return err
		}
		m.StartDate = start
	}
	if materialFlagDeadline != "" {
		deadline, err := parser.ParseDate(materialFlagDeadline)
		if err != nil {
			return err
		}
		m.Deadline = deadline
	}
	if err := validate.DateOrder(m.StartDate, m.Deadline); err != nil {
		return err
	}

	if err := ctx.MaterialRepo.Update(m); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.NewMaterialOutput(m))
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Updated %s", m.ID))
	return nil
}

func runMaterialDelete(cmd *cobra.Command, args []string) error {
	m, err := getMaterial(args[0])
	if err != nil {
		return err
	}

	if err := ctx.MaterialRepo.Delete(m.OwnerKey, m.ID); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(map[string]string{"status": "deleted", "material_id": m.ID})
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Deleted %s", m.ID))
	return nil
}

// getMaterial resolves a material argument for the configured owner.
func getMaterial(id string) (*model.Material, error) {
	if err := validate.MaterialID(id); err != nil {
		return nil, err
	}

	ownerKey, err := ctx.OwnerKey()
	if err != nil {
		return nil, err
	}

	m, err := ctx.MaterialRepo.Get(ownerKey, id)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return nil, errors.NewUserErrorWithField("material", id,
				"Material not found",
				"Use 'studypace material list' to see available materials").
				WrapSentinel(errors.ErrMaterialNotFound)
		}
		return nil, err
	}
	return m, nil
}

// slugify turns a title into a material ID.
func slugify(title string) string {
	var b strings.Builder
	lastDash := true // trim leading dashes
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
