package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSceneFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"three-spheres", "Three Spheres"},
		{"mirror_hall", "Mirror Hall"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete_metadata.json",
			content: `// Scene: Mirror Hall
// Description: Two mirrors facing each other
// Group: Mirrors

{"width": 40, "height": 30}`,
			expected: SceneInfo{
				ID:          "file:complete_metadata",
				Name:        "Mirror Hall",
				Description: "Two mirrors facing each other",
				Group:       "Mirrors",
				Type:        "file",
			},
		},
		{
			name: "partial_metadata.json",
			content: `// Scene: Lonely Sphere
{"width": 40, "height": 30}`,
			expected: SceneInfo{
				ID:    "file:partial_metadata",
				Name:  "Lonely Sphere",
				Group: "Scene Files",
				Type:  "file",
			},
		},
		{
			name:    "no-metadata.json",
			content: `{"width": 40, "height": 30}`,
			expected: SceneInfo{
				ID:    "file:no-metadata",
				Name:  "No Metadata",
				Group: "Scene Files",
				Type:  "file",
			},
		},
		{
			name: "late_comment.json",
			content: `{"width": 40,
// Scene: Ignored
"height": 30}`,
			expected: SceneInfo{
				ID:    "file:late_comment",
				Name:  "Late Comment",
				Group: "Scene Files",
				Type:  "file",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSceneFile(t, dir, tc.name, tc.content)

			result, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata() error: %v", err)
			}

			tc.expected.FilePath = path
			if result != tc.expected {
				t.Errorf("ParseSceneMetadata() = %+v, want %+v", result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata_MissingFile(t *testing.T) {
	result, err := ParseSceneMetadata("nonexistent.json")
	if err != nil {
		t.Errorf("ParseSceneMetadata() should handle missing files gracefully: %v", err)
	}
	if result.Name != "Nonexistent" {
		t.Errorf("Expected fallback name 'Nonexistent', got %q", result.Name)
	}
}

func TestParseSceneMetadata_EmptyName(t *testing.T) {
	path := writeSceneFile(t, t.TempDir(), "blank-name.json", "// Scene:\n{}")

	result, err := ParseSceneMetadata(path)
	if err != nil {
		t.Fatalf("ParseSceneMetadata() error: %v", err)
	}
	if result.Name != "Blank Name" {
		t.Errorf("Empty Scene header should fall back to filename, got %q", result.Name)
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "zeta.json", "// Scene: Alpha\n{}")
	writeSceneFile(t, dir, "alpha.json", "// Scene: Zulu\n{}")
	writeSceneFile(t, dir, "notes.txt", "not a scene")

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scene files, got %d", len(scenes))
	}
	if scenes[0].Name != "Alpha" || scenes[1].Name != "Zulu" {
		t.Errorf("Scenes should be sorted by name, got %q, %q", scenes[0].Name, scenes[1].Name)
	}
}

func TestListSceneFiles_NoDirectory(t *testing.T) {
	scenes, err := ListSceneFiles("")
	if err != nil {
		t.Errorf("ListSceneFiles() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "mirrors.json", "// Group: Mirrors\n{}")
	writeSceneFile(t, dir, "ungrouped.json", "{}")

	response, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	expectedGroups := []string{"Built-in Scenes", "Mirrors", "Scene Files"}
	if len(response.Groups) != len(expectedGroups) {
		t.Fatalf("Expected %d groups, got %d", len(expectedGroups), len(response.Groups))
	}
	for i, name := range expectedGroups {
		if response.Groups[i].Name != name {
			t.Errorf("Group %d = %q, want %q", i, response.Groups[i].Name, name)
		}
	}

	builtIn := response.Groups[0]
	expectedIDs := []string{"default", "light", "sphere-grid"}
	if len(builtIn.Scenes) != len(expectedIDs) {
		t.Fatalf("Built-in scenes count = %d, want %d", len(builtIn.Scenes), len(expectedIDs))
	}
	for i, id := range expectedIDs {
		if builtIn.Scenes[i].ID != id {
			t.Errorf("Built-in scene %d = %q, want %q", i, builtIn.Scenes[i].ID, id)
		}
	}

	for _, group := range response.Groups {
		for _, info := range group.Scenes {
			if info.ID == "" || info.Name == "" {
				t.Errorf("Scene with missing ID or name: %+v", info)
			}
			if info.Type == "file" && (info.FilePath == "" || !strings.HasPrefix(info.ID, "file:")) {
				t.Errorf("Malformed file scene: %+v", info)
			}
		}
	}
}

func TestByName(t *testing.T) {
	for _, info := range ListBuiltInScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := ByName(info.ID)
			if err != nil {
				t.Fatalf("ByName(%q) error: %v", info.ID, err)
			}
			if s.Name != info.ID {
				t.Errorf("Scene name = %q, want %q", s.Name, info.ID)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Built-in scene %q should validate: %v", info.ID, err)
			}
		})
	}

	_, err := ByName("cornell-box")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}
