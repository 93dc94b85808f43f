package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Update is one detected version or tag bump. The document behind it has
// already been mutated in memory; MarshalDocument serializes that mutated
// state for the commit.
type Update interface {
	Category() FileCategory
	DisplayName() string
	FromVersion() string
	ToVersion() string
	FilePath() string
	FileSHA() string
	CommitMessage() string
	MarshalDocument() ([]byte, error)
}

// ChartRelease is a chart version bump inside a kustomization.yaml.
type ChartRelease struct {
	Document        *Kustomization
	Path            string
	SHA             string
	OriginalVersion string
	NewVersion      string
	ReleaseName     string
}

func (u *ChartRelease) Category() FileCategory { return CategoryKustomize }
func (u *ChartRelease) DisplayName() string    { return u.ReleaseName }
func (u *ChartRelease) FromVersion() string    { return u.OriginalVersion }
func (u *ChartRelease) ToVersion() string      { return u.NewVersion }
func (u *ChartRelease) FilePath() string       { return u.Path }
func (u *ChartRelease) FileSHA() string        { return u.SHA }

func (u *ChartRelease) CommitMessage() string {
	return fmt.Sprintf("Bump %s version to %s", u.ReleaseName, u.NewVersion)
}

func (u *ChartRelease) MarshalDocument() ([]byte, error) {
	return yaml.Marshal(u.Document)
}

// ChartDependencyUpdate is a version bump of one dependency in a Chart.yaml.
type ChartDependencyUpdate struct {
	Document        *ChartFile
	Path            string
	SHA             string
	OriginalVersion string
	NewVersion      string
	ChartName       string
}

func (u *ChartDependencyUpdate) Category() FileCategory { return CategoryChart }
func (u *ChartDependencyUpdate) DisplayName() string    { return u.ChartName }
func (u *ChartDependencyUpdate) FromVersion() string    { return u.OriginalVersion }
func (u *ChartDependencyUpdate) ToVersion() string      { return u.NewVersion }
func (u *ChartDependencyUpdate) FilePath() string       { return u.Path }
func (u *ChartDependencyUpdate) FileSHA() string        { return u.SHA }

func (u *ChartDependencyUpdate) CommitMessage() string {
	return fmt.Sprintf("Bump %s version to %s", u.ChartName, u.NewVersion)
}

func (u *ChartDependencyUpdate) MarshalDocument() ([]byte, error) {
	return yaml.Marshal(u.Document)
}

// ImageUpdate is a container image tag bump inside a deployment manifest.
type ImageUpdate struct {
	Document   *Deployment
	Path       string
	SHA        string
	CurrentTag string
	NewTag     string
	ImageName  string
}

func (u *ImageUpdate) Category() FileCategory { return CategoryDeployment }
func (u *ImageUpdate) DisplayName() string    { return u.ImageName }
func (u *ImageUpdate) FromVersion() string    { return u.CurrentTag }
func (u *ImageUpdate) ToVersion() string      { return u.NewTag }
func (u *ImageUpdate) FilePath() string       { return u.Path }
func (u *ImageUpdate) FileSHA() string        { return u.SHA }

func (u *ImageUpdate) CommitMessage() string {
	return fmt.Sprintf("Bump %s image tag to %s", u.ImageName, u.NewTag)
}

func (u *ImageUpdate) MarshalDocument() ([]byte, error) {
	return yaml.Marshal(u.Document)
}
