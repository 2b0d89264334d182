package steps

import (
	"fmt"

	"github.com/oodtools/oodgen/cli/config"
)

// CollectTemplateVars represents the variables derivation step.
type CollectTemplateVars struct{}

// quoted formats a single-quoted string assignment.
func quoted(name string, value string) string {
	return fmt.Sprintf("@%s = '%s'", name, value)
}

// raw formats an assignment of a value emitted as-is.
func raw(name string, value interface{}) string {
	return fmt.Sprintf("@%s = %v", name, value)
}

// resourceVars emits the assignments of one selectable resource dimension.
// The min/max bounds are emitted only when select is set; the scalar value
// is emitted always.
func resourceVars(appName string, dimension string, varName string,
	res *config.ResourceOpts,
) ([]string, error) {
	if res == nil || res.Value == nil {
		return nil, fmt.Errorf("app %s: %s value is required", appName, dimension)
	}

	vars := []string{}
	if res.Select {
		vars = append(vars,
			raw(varName+"_select", true),
			raw(varName+"_min", res.Min),
			raw(varName+"_max", res.Max),
		)
	}
	vars = append(vars, raw(varName, res.Value))

	return vars, nil
}

// Run derives the flat variable assignment list for the app by layering
// app-level overrides over base-level defaults. The order of assignments
// is fixed and is a part of the produced vars file format.
func (CollectTemplateVars) Run(appCtx *AppCtx) error {
	if appCtx.Skipped {
		return nil
	}

	base := appCtx.Base
	app := appCtx.App

	vars := []string{
		quoted("title", app.Title),
		quoted("name", app.Name),
	}

	memoryVars, err := resourceVars(app.AppName, "memory", "custom_memory_per_node", app.Memory)
	if err != nil {
		return err
	}
	vars = append(vars, memoryVars...)

	cpuVars, err := resourceVars(app.AppName, "cpu", "custom_num_cores", app.CPU)
	if err != nil {
		return err
	}
	vars = append(vars, cpuVars...)

	vmImage := base.VMImage
	if app.VMImage != nil {
		vmImage = app.VMImage
	}
	if vmImage == nil {
		vmImage = &config.VMImageOpts{}
	}
	if vmImage.Select {
		// The base image is selected by the user at submission time,
		// so no concrete image is emitted.
		vars = append(vars, raw("base_image_select", true))
	} else {
		vars = append(vars,
			raw("base_image_select", false),
			raw("base_image", vmImage.BaseImage),
		)
	}

	useCustomImageFile := base.UseCustomImageFile
	if app.UseCustomImageFile != nil {
		useCustomImageFile = *app.UseCustomImageFile
	}
	vars = append(vars, raw("use_custom_image_file", useCustomImageFile))

	appCtx.Vars = vars

	return nil
}
