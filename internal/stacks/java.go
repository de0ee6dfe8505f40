// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Java/Kotlin runtime detector

package stacks

var (
	mavenFrameworks = []marker{
		{needles: []string{"spring-boot"}, label: "spring-boot"},
		{needles: []string{"quarkus"}, label: "quarkus"},
		{needles: []string{"micronaut"}, label: "micronaut"},
	}
	gradleFrameworks = []marker{
		{needles: []string{"spring-boot", "org.springframework.boot"}, label: "spring-boot"},
		{needles: []string{"quarkus"}, label: "quarkus"},
		{needles: []string{"micronaut"}, label: "micronaut"},
	}
)

// JavaDetector detects Maven and Gradle projects
type JavaDetector struct {
	BaseDetector
}

// NewJavaDetector creates a new Java detector
func NewJavaDetector() *JavaDetector {
	return &JavaDetector{
		BaseDetector: NewBaseDetector(StackJava),
	}
}

// Detect checks for pom.xml, build.gradle or build.gradle.kts
func (d *JavaDetector) Detect(root string) (Runtime, bool) {
	hasPom := fileExists(root, "pom.xml")
	hasGradle := fileExists(root, "build.gradle")
	hasGradleKts := fileExists(root, "build.gradle.kts")

	if !hasPom && !hasGradle && !hasGradleKts {
		return nil, false
	}

	// Maven takes precedence when both build systems are present
	if hasPom {
		rt := &JavaRuntime{BuildTool: "maven"}
		if content, ok := readText(root, "pom.xml"); ok {
			rt.Framework = firstContained(content, mavenFrameworks)
		}
		return rt, true
	}

	gradleFile := "build.gradle"
	if hasGradleKts {
		gradleFile = "build.gradle.kts"
	}

	rt := &JavaRuntime{BuildTool: "gradle"}
	if content, ok := readText(root, gradleFile); ok {
		rt.Framework = firstContained(content, gradleFrameworks)
	}
	return rt, true
}
