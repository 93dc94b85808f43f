package models

// Kustomization is a kustomization.yaml with an optional embedded Helm chart
// reference. Fields this bot does not touch are captured by the inline map so
// a round trip only changes the targeted version field.
type Kustomization struct {
	HelmCharts []HelmChart    `yaml:"helmCharts,omitempty"`
	Rest       map[string]any `yaml:",inline"`
}

type HelmChart struct {
	Name        string         `yaml:"name"`
	Repo        string         `yaml:"repo"`
	Version     string         `yaml:"version"`
	ReleaseName string         `yaml:"releaseName,omitempty"`
	Namespace   string         `yaml:"namespace,omitempty"`
	Rest        map[string]any `yaml:",inline"`
}

// ChartFile is the dependency-bearing subset of a Helm Chart.yaml.
type ChartFile struct {
	Dependencies []ChartDependency `yaml:"dependencies,omitempty"`
	Rest         map[string]any    `yaml:",inline"`
}

type ChartDependency struct {
	Name       string         `yaml:"name"`
	Version    string         `yaml:"version"`
	Repository string         `yaml:"repository"`
	Rest       map[string]any `yaml:",inline"`
}

// Deployment models the path down to the container images of a Kubernetes
// Deployment manifest. Everything else rides along in the inline maps.
type Deployment struct {
	Spec DeploymentSpec `yaml:"spec"`
	Rest map[string]any `yaml:",inline"`
}

type DeploymentSpec struct {
	Template PodTemplate    `yaml:"template"`
	Rest     map[string]any `yaml:",inline"`
}

type PodTemplate struct {
	Spec PodSpec        `yaml:"spec"`
	Rest map[string]any `yaml:",inline"`
}

type PodSpec struct {
	Containers []Container    `yaml:"containers"`
	Rest       map[string]any `yaml:",inline"`
}

type Container struct {
	Name  string         `yaml:"name,omitempty"`
	Image string         `yaml:"image"`
	Rest  map[string]any `yaml:",inline"`
}
