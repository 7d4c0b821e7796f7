// cmd/client/cmd/convert/convert.go
package convert

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"convertor/cmd/client/cmd/plans"
	"convertor/cmd/client/cmd/types"
	"convertor/internal/domain/conversion"
)

var formatFlag string

var ConvertCmd = &cobra.Command{
	Use:   "convert [fișier]",
	Short: "Convertește o imagine în alt format",
	Long: `Convertește o imagine în unul dintre formatele JPG, PNG, GIF, WEBP,
BMP sau TIFF. Formatul sursă al fișierului nu apare printre ținte - o imagine
nu poate fi convertită în propriul format.

Fiecare conversie este contorizată conform planului activ. La depășirea
limitelor planului, conversia este refuzată de server.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: types.RequireAuth,
	RunE:    run,
}

func run(cmd *cobra.Command, args []string) error {
	app, err := types.App(cmd.Context())
	if err != nil {
		return err
	}

	wf := app.NewConversion()
	reader := bufio.NewReader(os.Stdin)

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	for {
		if path == "" {
			fmt.Print("Calea către imagine: ")
			line, _ := reader.ReadString('\n')
			path = strings.TrimSpace(line)
			if path == "" {
				return fmt.Errorf("niciun fișier selectat")
			}
		}

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("fișierul nu poate fi citit: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("%s este un director, nu o imagine", path)
		}

		if err := wf.SelectFile(filepath.Base(path), info.Size()); err != nil {
			return err
		}

		fmt.Printf("Fișier: %s (%.2f MB)\n", wf.FileName(), float64(wf.FileSize())/1024/1024)

		target, err := chooseFormat(wf, reader)
		if err != nil {
			return err
		}
		if err := wf.ChooseFormat(target); err != nil {
			return err
		}

		for {
			fmt.Println("Se procesează imaginea...")
			wf.Start(cmd.Context())

			if wf.State() != conversion.StateFailed {
				break
			}

			// Eșec generic: fișierul și formatul rămân pentru reîncercare.
			color.Red("Eroare: %s", wf.Message())
			if !askYesNo(reader, "Reîncearcă? [d/N]: ") {
				return nil
			}
		}

		switch wf.State() {
		case conversion.StateSucceeded:
			color.Green(wf.Message())
			if !askYesNo(reader, "Convertește altă imagine? [d/N]: ") {
				return nil
			}
			if err := wf.Reset(); err != nil {
				return err
			}
			path = ""
			formatFlag = ""

		case conversion.StateLimitExceeded:
			showUpsell(wf.Message())
			if askYesNo(reader, "Vezi planurile? [d/N]: ") {
				list, err := app.Plans(cmd.Context())
				if err != nil {
					return err
				}
				current := 0
				if u, err := app.CurrentUser(); err == nil {
					current = u.PlanID
				}
				fmt.Println()
				plans.Render(os.Stdout, list, current)
				fmt.Println("Alege un plan cu: convertor plans select <planid>")
			}
			return nil

		default:
			return nil
		}
	}
}

func chooseFormat(wf *conversion.Workflow, reader *bufio.Reader) (conversion.Format, error) {
	if formatFlag != "" {
		f, ok := conversion.ParseFormat(formatFlag)
		if !ok {
			return "", fmt.Errorf("format necunoscut: %s", formatFlag)
		}
		return f, nil
	}

	targets := wf.TargetFormats()

	fmt.Println("Alege formatul de conversie:")
	for i, f := range targets {
		fmt.Printf("%d. %s\n", i+1, f)
	}
	fmt.Printf("Alegerea ta [1-%d]: ", len(targets))

	line, _ := reader.ReadString('\n')
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > len(targets) {
		return "", fmt.Errorf("alegere nevalidă")
	}

	return targets[choice-1], nil
}

func showUpsell(message string) {
	fmt.Println()
	color.New(color.FgRed, color.Bold).Println("=== Limită Depășită ===")
	fmt.Println(message)
	fmt.Println("Îmbunătățește-ți planul pentru a beneficia de limite mai mari.")
	fmt.Println()
}

func askYesNo(reader *bufio.Reader, prompt string) bool {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "d", "da", "y", "yes":
		return true
	default:
		return false
	}
}

func init() {
	ConvertCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "formatul țintă (JPG, PNG, GIF, WEBP, BMP, TIFF)")
}
