package cli

import (
	"fmt"

	"github.com/dutchbot/budget-cli/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$                  /$$                  /$$            /$$$$$$  /$$       /$$$$$$
        | $$__  $$                | $$                 | $$           /$$__  $$| $$      |_  $$_/
        | $$  \ $$ /$$   /$$  /$$$$$$$  /$$$$$$   /$$$$$$$$  /$$$$$$ | $$  \__/| $$        | $$
        | $$$$$$$ | $$  | $$ /$$__  $$ /$$__  $$ /$$__  $$|_  $$_/   | $$      | $$        | $$
        | $$__  $$| $$  | $$| $$  | $$| $$  \ $$| $$  | $$  | $$     | $$      | $$        | $$
        | $$  \ $$| $$  | $$| $$  | $$| $$  | $$| $$  | $$  | $$ /$$ | $$    $$| $$        | $$
        | $$$$$$$/|  $$$$$$/|  $$$$$$$|  $$$$$$$|  $$$$$$$  |  $$$$/ |  $$$$$$/| $$$$$$$$ /$$$$$$
        |_______/  \______/  \_______/ \____  $$ \_______/   \___/    \______/ |________/|______/
                                       /$$  \ $$
                                      |  $$$$$$/
                                       \______/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Budget CLI (v%s)", formattedVersion)))
}
