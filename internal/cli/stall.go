package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sliitsesc/event-navigation-dashboard/exhibition"
	"github.com/sliitsesc/event-navigation-dashboard/view"
)

var stallCmd = &cobra.Command{
	Use:   "stall",
	Short: "Manage exhibition stalls",
	Long: `Stall management commands. Stalls belong to a zone.

Examples:
  expoctl stall list --zone 1
  expoctl stall list                 # first zone, like the dashboard
  expoctl stall create --zone 1 --name "Booth 1" --organizer Acme \
    --category TECHNOLOGY --floor 1 --location A-1
  expoctl stall delete 7`,
}

var stallListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stalls of a zone",
	RunE:  runStallList,
}

var stallCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new stall in a zone",
	RunE:  runStallCreate,
}

var stallUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a stall",
	Args:  cobra.ExactArgs(1),
	RunE:  runStallUpdate,
}

var stallDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stall",
	Args:  cobra.ExactArgs(1),
	RunE:  runStallDelete,
}

func init() {
	stallListCmd.Flags().Int("zone", 0, "zone id (defaults to the first zone)")

	for _, cmd := range []*cobra.Command{stallCreateCmd, stallUpdateCmd} {
		cmd.Flags().String("name", "", "stall name (required)")
		cmd.Flags().String("description", "", "stall description")
		cmd.Flags().String("organizer", "", "organizer name (required)")
		cmd.Flags().String("category", string(exhibition.CategoryOther), "stall category")
		cmd.Flags().Int("floor", exhibition.DefaultFloorNumber, "floor number (>= 1)")
		cmd.Flags().String("location", "", "stall location (required)")
		cmd.Flags().String("image", "", "stall image URL")
		cmd.Flags().String("qr-code", "", "stall QR code URL")
	}
	stallCreateCmd.Flags().Int("zone", 0, "owning zone id (required)")
	_ = stallCreateCmd.MarkFlagRequired("zone")

	stallDeleteCmd.Flags().BoolP("force", "f", false, "skip confirmation prompt")

	stallCmd.AddCommand(stallListCmd)
	stallCmd.AddCommand(stallCreateCmd)
	stallCmd.AddCommand(stallUpdateCmd)
	stallCmd.AddCommand(stallDeleteCmd)

	rootCmd.AddCommand(stallCmd)
}

func stallPayload(cmd *cobra.Command) exhibition.CreateStallRequest {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	organizer, _ := cmd.Flags().GetString("organizer")
	category, _ := cmd.Flags().GetString("category")
	floor, _ := cmd.Flags().GetInt("floor")
	location, _ := cmd.Flags().GetString("location")
	image, _ := cmd.Flags().GetString("image")
	qrCode, _ := cmd.Flags().GetString("qr-code")
	return exhibition.CreateStallRequest{
		Name:        name,
		Description: description,
		Organizer:   organizer,
		Category:    exhibition.StallCategory(category),
		FloorNumber: floor,
		Location:    location,
		Image:       image,
		QRCode:      qrCode,
	}
}

func printStallTable(stalls []exhibition.Stall) error {
	if len(stalls) == 0 {
		fmt.Println("No stalls found")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tORGANIZER\tCATEGORY\tFLOOR\tLOCATION")
	for _, s := range stalls {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			s.ID, s.Name, s.Organizer, s.Category, s.FloorNumber, s.Location)
	}
	return w.Flush()
}

func runStallList(cmd *cobra.Command, args []string) error {
	client, store := getClient()
	if err := requireSession(store); err != nil {
		return err
	}

	zoneID, _ := cmd.Flags().GetInt("zone")
	ctx := cmd.Context()

	// Without an explicit zone, behave like the dashboard: load the
	// zones and auto-select the first.
	if zoneID == 0 {
		stallsView := view.NewStallsView(client)
		stallsView.Load(ctx)
		snap := stallsView.Snapshot()
		if snap.Err != "" {
			return fmt.Errorf("%s", snap.Err)
		}
		if snap.Selected == nil {
			fmt.Println("No zones found. Create zones first to manage stalls")
			return nil
		}
		if done, err := printStructured(map[string]interface{}{
			"zone":   snap.Selected,
			"stalls": snap.Stalls,
			"count":  len(snap.Stalls),
		}); done {
			return err
		}
		fmt.Printf("Zone: %s (id %d)\n", snap.Selected.ZoneName, snap.Selected.ID)
		return printStallTable(snap.Stalls)
	}

	stalls, err := client.Stalls.ListByZone(ctx, zoneID)
	if err != nil {
		if apiErr, ok := exhibition.AsAPIError(err); ok && apiErr.IsStallNotFound() {
			stalls = nil
		} else {
			return err
		}
	}

	if done, err := printStructured(map[string]interface{}{
		"stalls": stalls,
		"count":  len(stalls),
	}); done {
		return err
	}
	return printStallTable(stalls)
}

func runStallCreate(cmd *cobra.Command, args []string) error {
	client, store := getClient()
	if err := requireSession(store); err != nil {
		return err
	}

	zoneID, _ := cmd.Flags().GetInt("zone")
	stall, err := client.Stalls.Create(cmd.Context(), zoneID, stallPayload(cmd))
	if err != nil {
		return err
	}

	if done, err := printStructured(stall); done {
		return err
	}
	fmt.Printf("Created stall %q (id %d) in zone %d\n", stall.Name, stall.ID, stall.ZoneID)
	return nil
}

func runStallUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid stall id %q", args[0])
	}

	client, store := getClient()
	if err := requireSession(store); err != nil {
		return err
	}

	stall, err := client.Stalls.Update(cmd.Context(), id, stallPayload(cmd))
	if err != nil {
		return err
	}

	if done, err := printStructured(stall); done {
		return err
	}
	fmt.Printf("Updated stall %q (id %d)\n", stall.Name, stall.ID)
	return nil
}

func runStallDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid stall id %q", args[0])
	}

	client, store := getClient()
	if err := requireSession(store); err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force && !confirm(fmt.Sprintf("Are you sure you want to delete stall %d?", id)) {
		fmt.Println("Aborted")
		return nil
	}

	if err := client.Stalls.Delete(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("Deleted stall %d\n", id)
	return nil
}
