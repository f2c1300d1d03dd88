// Command dnssecvalidator runs the DNSSEC chain-of-trust validator,
// either as a one-shot CLI lookup (validate) or as a Kafka-driven
// batch pipeline (serve), replacing the teacher's single-purpose
// cmd/dnssecanalyzer/main.go with a cobra-based entrypoint.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jacksonbarreto/dnssec-chain-validator/config"
	"github.com/jacksonbarreto/dnssec-chain-validator/internal/domainextractor"
	"github.com/jacksonbarreto/dnssec-chain-validator/internal/export"
	"github.com/jacksonbarreto/dnssec-chain-validator/internal/kafkaconsumer"
	"github.com/jacksonbarreto/dnssec-chain-validator/internal/pipeline"
	"github.com/jacksonbarreto/dnssec-chain-validator/internal/producer"
	"github.com/jacksonbarreto/dnssec-chain-validator/internal/resolver"
	"github.com/jacksonbarreto/dnssec-chain-validator/internal/validator"
	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/logservice"
)

var configFilePath string

func main() {
	root := &cobra.Command{
		Use:   "dnssecvalidator",
		Short: "Validates the DNSSEC chain of trust for a domain",
	}
	root.PersistentFlags().StringVar(&configFilePath, "config", "", "path to a YAML configuration file")

	root.AddCommand(newValidateCommand(), newServeCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newValidateCommand() *cobra.Command {
	var writeExports bool

	cmd := &cobra.Command{
		Use:   "validate <domain>",
		Short: "Run one chain-of-trust validation and print/export the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitConfig(configFilePath); err != nil {
				return err
			}

			log := logservice.NewLogServiceDefault()
			res := resolver.NewDefault(log)
			v := validator.New(res, log)

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			domain := args[0]
			if normalized, extractErr := domainextractor.ExtractDomain(domain); extractErr == nil {
				domain = normalized
			}

			chain, err := v.Validate(ctx, domain)
			if err != nil {
				return fmt.Errorf("validate: %w", err)
			}

			text := export.ToText(chain)
			fmt.Fprint(cmd.OutOrStdout(), text)

			if writeExports {
				jsonPath, textPath, writeErr := export.Write(chain, chain.QueryTime)
				if writeErr != nil {
					return writeErr
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\n", jsonPath, textPath)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&writeExports, "export", false, "also write JSON/text exports to the configured export directory")
	return cmd
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Kafka-driven batch validation pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitConfig(configFilePath); err != nil {
				return err
			}

			log := logservice.NewLogServiceDefault()
			log.Info("starting DNSSEC chain validator pipeline")

			res := resolver.NewDefault(log)
			v := validator.New(res, log)

			kafkaCfg := config.Kafka()

			kafkaProducer, producerErr := producer.NewDefault(log)
			if producerErr != nil {
				panic(producerErr)
			}
			defer kafkaProducer.Close()
			log.Info("producer to topics %v created", kafkaCfg.TopicsProducer)

			handler := pipeline.NewDefault(v, kafkaProducer)

			log.Info("starting consumer for topics: %v", kafkaCfg.TopicsConsumer)
			consumer, consumerErr := kafkaconsumer.New(kafkaCfg.Brokers, kafkaCfg.GroupID, kafkaCfg.TopicsConsumer, handler, cmd.Context())
			if consumerErr != nil {
				panic(consumerErr)
			}
			defer consumer.Close()

			if consumeErr := consumer.Consume(); consumeErr != nil {
				panic(consumeErr)
			}
			return nil
		},
	}
}
