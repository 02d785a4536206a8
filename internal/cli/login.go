package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	Long: `Sign in to the event-navigation API and persist the session.

The session is stored under ~/.expoctl and reused by every command
until 'expoctl logout'.

Examples:
  expoctl login --email admin@sliitsesc.org --password secret
  expoctl login --email admin@sliitsesc.org      # prompts for the password
  EXPOCTL_PASSWORD=secret expoctl login --email admin@sliitsesc.org`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().String("email", "", "admin email")
	loginCmd.Flags().String("password", "", "admin password (or EXPOCTL_PASSWORD)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		password = os.Getenv("EXPOCTL_PASSWORD")
	}

	reader := bufio.NewReader(os.Stdin)
	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	_, store := getClient()
	if err := store.Login(cmd.Context(), email, password); err != nil {
		return err
	}

	user := store.Current()
	if done, err := printStructured(user); done {
		return err
	}
	fmt.Printf("Signed in as %s\n", user.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	store := getStore()
	if err := store.Logout(); err != nil {
		return err
	}
	fmt.Println("Signed out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	store := getStore()
	user := store.Current()
	if user == nil {
		return fmt.Errorf("not signed in")
	}
	if done, err := printStructured(user); done {
		return err
	}
	fmt.Printf("%s (id %d)\n", user.Email, user.ID)
	return nil
}
