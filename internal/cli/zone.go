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

var zoneCmd = &cobra.Command{
	Use:   "zone",
	Short: "Manage exhibition zones",
	Long: `Zone management commands.

Examples:
  expoctl zone list
  expoctl zone create --name "Hall A" --color "#112233"
  expoctl zone update 3 --name "Hall A West" --color "#112233"
  expoctl zone delete 3`,
}

var zoneListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all zones",
	RunE:  runZoneList,
}

var zoneCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new zone",
	RunE:  runZoneCreate,
}

var zoneUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a zone",
	Args:  cobra.ExactArgs(1),
	RunE:  runZoneUpdate,
}

var zoneDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a zone",
	Long: `Delete a zone.

A zone that still contains stalls cannot be deleted; delete its stalls
first.`,
	Args: cobra.ExactArgs(1),
	RunE: runZoneDelete,
}

func init() {
	for _, cmd := range []*cobra.Command{zoneCreateCmd, zoneUpdateCmd} {
		cmd.Flags().String("name", "", "zone name (required)")
		cmd.Flags().String("description", "", "zone description")
		cmd.Flags().String("image-url", "", "zone image URL")
		cmd.Flags().String("color", exhibition.DefaultColorCode, "accent color in #RRGGBB form")
	}

	zoneDeleteCmd.Flags().BoolP("force", "f", false, "skip confirmation prompt")

	zoneCmd.AddCommand(zoneListCmd)
	zoneCmd.AddCommand(zoneCreateCmd)
	zoneCmd.AddCommand(zoneUpdateCmd)
	zoneCmd.AddCommand(zoneDeleteCmd)

	rootCmd.AddCommand(zoneCmd)
}

func zonePayload(cmd *cobra.Command) exhibition.CreateZoneRequest {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	imageURL, _ := cmd.Flags().GetString("image-url")
	color, _ := cmd.Flags().GetString("color")
	return exhibition.CreateZoneRequest{
		ZoneName:    name,
		Description: description,
		ImageURL:    imageURL,
		ColorCode:   color,
	}
}

func runZoneList(cmd *cobra.Command, args []string) error {
	client, store := getClient()
	if err := requireSession(store); err != nil {
		return err
	}

	zones, err := client.Zones.List(cmd.Context())
	if err != nil {
		return err
	}

	if done, err := printStructured(map[string]interface{}{
		"zones": zones,
		"count": len(zones),
	}); done {
		return err
	}

	if len(zones) == 0 {
		fmt.Println("No zones found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOLOR\tSTALLS\tCREATED")
	for _, z := range zones {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			z.ID, z.ZoneName, z.ColorCode, len(z.Stalls), z.CreatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

func runZoneCreate(cmd *cobra.Command, args []string) error {
	client, store := getClient()
	if err := requireSession(store); err != nil {
		return err
	}

	zone, err := client.Zones.Create(cmd.Context(), zonePayload(cmd))
	if err != nil {
		return err
	}

	if done, err := printStructured(zone); done {
		return err
	}
	fmt.Printf("Created zone %q (id %d)\n", zone.ZoneName, zone.ID)
	return nil
}

func runZoneUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid zone id %q", args[0])
	}

	client, store := getClient()
	if err := requireSession(store); err != nil {
		return err
	}

	zone, err := client.Zones.Update(cmd.Context(), id, zonePayload(cmd))
	if err != nil {
		return err
	}

	if done, err := printStructured(zone); done {
		return err
	}
	fmt.Printf("Updated zone %q (id %d)\n", zone.ZoneName, zone.ID)
	return nil
}

func runZoneDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid zone id %q", args[0])
	}

	client, store := getClient()
	if err := requireSession(store); err != nil {
		return err
	}

	// Fetch the zone so the confirmation can warn about its stalls.
	zones, err := client.Zones.List(cmd.Context())
	if err != nil {
		return err
	}
	var target *exhibition.Zone
	for i := range zones {
		if zones[i].ID == id {
			target = &zones[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("zone %d not found", id)
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force && !confirm(view.ZoneDeletePrompt(*target)) {
		fmt.Println("Aborted")
		return nil
	}

	if err := client.Zones.Delete(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("Deleted zone %q (id %d)\n", target.ZoneName, id)
	return nil
}
