// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package apps

import (
	"io"
	"strings"

	"github.com/azure/acactl/pkg/azure"
	"github.com/azure/acactl/pkg/convert"
	"github.com/azure/acactl/pkg/output"
)

const (
	noName        = "No name"
	unknownStatus = "Unknown"
)

// Row is the display form of an App.
type Row struct {
	Index         int      `json:"-"`
	Name          string   `json:"name"`
	Subscription  string   `json:"subscription"`
	ResourceGroup string   `json:"resourceGroup"`
	Location      string   `json:"location"`
	Images        []string `json:"images"`
	Status        string   `json:"status"`
}

// ImageList returns the image basenames one per line.
func (r Row) ImageList() string {
	return strings.Join(r.Images, "\n")
}

// PresentOptions controls the rendering of Present.
type PresentOptions struct {
	// Prepend the zero-based row index, used when the user picks one app from the table.
	WithIndex bool
}

var tableColumns = []output.Column{
	{Heading: "Name", ValueTemplate: "{{.Name}}"},
	{Heading: "Subscription", ValueTemplate: "{{.Subscription}}"},
	{Heading: "Resource Group", ValueTemplate: "{{.ResourceGroup}}"},
	{Heading: "Location", ValueTemplate: "{{.Location}}"},
	{Heading: "Image(s)", ValueTemplate: "{{.ImageList}}"},
	{Heading: "Status", ValueTemplate: "{{.Status}}"},
}

var indexColumn = output.Column{Heading: "#", ValueTemplate: "{{.Index}}"}

// Rows converts apps to their display rows.
func Rows(apps []*App) []Row {
	rows := make([]Row, len(apps))
	for i, app := range apps {
		rows[i] = toRow(i, app)
	}

	return rows
}

func toRow(index int, app *App) Row {
	row := Row{
		Index:         index,
		Name:          noName,
		Subscription:  azure.ShortSubscriptionId(app.Parts.SubscriptionId),
		ResourceGroup: app.Parts.ResourceGroupName,
		Images:        []string{},
		Status:        unknownStatus,
	}

	containerApp := app.ContainerApp
	if containerApp == nil {
		return row
	}

	row.Name = convert.ToValueWithDefault(containerApp.Name, noName)
	row.Location = convert.ToValueWithDefault(containerApp.Location, "")

	properties := containerApp.Properties
	if properties == nil {
		return row
	}

	if status := convert.ToValueWithDefault(properties.RunningStatus, ""); status != "" {
		row.Status = string(status)
	}

	if properties.Template != nil {
		for _, container := range properties.Template.Containers {
			if container == nil || container.Image == nil {
				continue
			}

			row.Images = append(row.Images, imageBaseName(*container.Image))
		}
	}

	return row
}

// imageBaseName returns the last path segment of an image reference, e.g. "web:1.0" for "myacr.io/team/web:1.0".
func imageBaseName(image string) string {
	return image[strings.LastIndex(image, "/")+1:]
}

// Present writes apps to writer using formatter. Table output gets the fixed column layout.
func Present(formatter output.Formatter, writer io.Writer, apps []*App, options PresentOptions) error {
	rows := Rows(apps)

	if formatter.Kind() != output.TableFormat {
		return formatter.Format(rows, writer, nil)
	}

	columns := tableColumns
	if options.WithIndex {
		columns = append([]output.Column{indexColumn}, tableColumns...)
	}

	return formatter.Format(rows, writer, output.TableFormatterOptions{Columns: columns})
}
