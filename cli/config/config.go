package config

// AppsCfg stores all information from the apps.yaml configuration file.
// Filled in when parsing the configuration file and never mutated afterwards.
//
// apps.yaml file format:
// base:
//   app_type: tag
//   git_url: url
//   git_dir: path
//   git_branch: branch
//   vm_image:
//     select: bool
//     base_image: image
//   use_custom_image_file: bool
// apps:
//   - app_name: name
//     title: title
//     name: name
//     cpu:
//       value: num
//       select: bool
//       min: num
//       max: num
//     memory: same as cpu
//     vm_image: optional override of base
//     use_custom_image_file: optional override of base
type AppsCfg struct {
	// Base describes the base application template shared by all apps.
	Base *BaseOpts
	// Apps is an ordered list of applications to generate.
	Apps []AppOpts
}

// BaseOpts stores base application template options.
type BaseOpts struct {
	// AppType is an informational application type tag.
	AppType string `mapstructure:"app_type" yaml:"app_type"`
	// GitURL is a remote URL of the base template repository.
	GitURL string `mapstructure:"git_url" yaml:"git_url"`
	// GitDir is a local clone path, relative to the root directory.
	GitDir string `mapstructure:"git_dir" yaml:"git_dir"`
	// GitBranch is a branch of the base template repository to clone.
	GitBranch string `mapstructure:"git_branch" yaml:"git_branch"`
	// VMImage is a default VM image selection.
	VMImage *VMImageOpts `mapstructure:"vm_image" yaml:"vm_image"`
	// UseCustomImageFile is a default for the custom image file toggle.
	UseCustomImageFile bool `mapstructure:"use_custom_image_file" yaml:"use_custom_image_file"`
}

// VMImageOpts stores VM image selection options.
type VMImageOpts struct {
	// Select enables user selection of the base image at submission time.
	Select bool `mapstructure:"select" yaml:"select"`
	// BaseImage is the base VM image name.
	BaseImage interface{} `mapstructure:"base_image" yaml:"base_image"`
}

// ResourceOpts stores a selectable resource dimension (CPU cores, memory).
// Values are kept as-is: no type or range checks are performed, malformed
// values surface later as renderer failures.
type ResourceOpts struct {
	// Value is the resource amount. Required.
	Value interface{} `mapstructure:"value" yaml:"value"`
	// Select exposes the dimension as a user-adjustable range.
	Select bool `mapstructure:"select" yaml:"select"`
	// Min is the lower bound of the range. Used only if Select is set.
	Min interface{} `mapstructure:"min" yaml:"min"`
	// Max is the upper bound of the range. Used only if Select is set.
	Max interface{} `mapstructure:"max" yaml:"max"`
}

// AppOpts stores options of a single application to generate.
type AppOpts struct {
	// AppName is the destination folder name and the idempotence key.
	AppName string `mapstructure:"app_name" yaml:"app_name"`
	// Title is the application title for form.yml.
	Title string `mapstructure:"title" yaml:"title"`
	// Name is the application name for manifest.yml.
	Name string `mapstructure:"name" yaml:"name"`
	// CPU is the CPU cores dimension.
	CPU *ResourceOpts `mapstructure:"cpu" yaml:"cpu"`
	// Memory is the memory-per-node dimension.
	Memory *ResourceOpts `mapstructure:"memory" yaml:"memory"`
	// VMImage overrides the base VM image selection if present.
	VMImage *VMImageOpts `mapstructure:"vm_image" yaml:"vm_image,omitempty"`
	// UseCustomImageFile overrides the base custom image file toggle if present.
	UseCustomImageFile *bool `mapstructure:"use_custom_image_file" yaml:"use_custom_image_file,omitempty"`
}
