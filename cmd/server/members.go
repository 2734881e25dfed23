package main

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sam-maryland/sleeper-league-hub/internal/store"
)

func membersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Maintain league members in the season store",
	}
	cmd.AddCommand(membersAddCmd())
	return cmd
}

func membersAddCmd() *cobra.Command {
	var (
		name, sleeperID string
		inactive        bool
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a league member",
		RunE: func(cmd *cobra.Command, args []string) error {
			member := newMember(name, sleeperID, !inactive)
			if member.DisplayName == "" {
				return errors.New("--name is required")
			}
			return withStore(func(ctx context.Context, a *app) error {
				if err := a.repo.CreateMember(ctx, member); err != nil {
					return err
				}
				a.logger.WithFields(logrus.Fields{
					"member_id":    member.ID,
					"display_name": member.DisplayName,
				}).Info("Member added")
				return printJSON(cmd, map[string]string{"id": member.ID.String(), "display_name": member.DisplayName})
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&sleeperID, "sleeper-id", "", "Sleeper user id")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Mark the member as no longer in the league")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newMember(name, sleeperID string, active bool) *store.Member {
	m := &store.Member{DisplayName: strings.TrimSpace(name), IsActive: active}
	if id := strings.TrimSpace(sleeperID); id != "" {
		m.SleeperUserID = &id
	}
	return m
}
