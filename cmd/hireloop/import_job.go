package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hireloop/hireloop/internal/jobimport"
	"github.com/hireloop/hireloop/internal/llm"
	"github.com/hireloop/hireloop/internal/types"
)

var importJobCmd = &cobra.Command{
	Use:   "import-job",
	Short: "Extract a structured job context from a posting URL or text file",
	Long:  "Fetch a job posting, extract title, skills, experience level, and description, and print the result as JSON.",
	RunE:  runImportJob,
}

var (
	importURL  string
	importFile string
)

func init() {
	importJobCmd.Flags().StringVarP(&importURL, "url", "u", "", "URL to fetch the job posting from")
	importJobCmd.Flags().StringVarP(&importFile, "text-file", "t", "", "Path to a text file containing the job posting")
	rootCmd.AddCommand(importJobCmd)
}

func runImportJob(cmd *cobra.Command, _ []string) error {
	if (importURL == "") == (importFile == "") {
		return fmt.Errorf("exactly one of --url or --text-file must be provided")
	}

	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("LLM_API_KEY environment variable is required")
	}

	ctx := context.Background()
	llmCfg := llm.DefaultGeminiConfig()
	if os.Getenv("LLM_PROVIDER") == string(llm.ProviderOpenAI) {
		llmCfg = llm.DefaultOpenAIConfig()
	}
	client, err := llm.NewClient(ctx, llmCfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	importer := jobimport.NewImporter(client)

	var jobCtx *types.JobContext
	if importURL != "" {
		jobCtx, err = importer.FromURL(ctx, importURL)
	} else {
		var data []byte
		data, err = os.ReadFile(importFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", importFile, err)
		}
		jobCtx, err = importer.FromText(ctx, string(data))
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(jobCtx, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
