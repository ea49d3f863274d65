// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"cogentcore.org/artflow/base/errors"
	"cogentcore.org/artflow/base/iox/imagex"
	"cogentcore.org/artflow/project"
	"github.com/spf13/cobra"
)

func newProjectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage the projects in the local project database",
	}
	cmd.AddCommand(newProjectSaveCmd(a))
	cmd.AddCommand(newProjectListCmd(a))
	cmd.AddCommand(newProjectGetCmd(a))
	cmd.AddCommand(newProjectDeleteCmd(a))
	return cmd
}

// withStore opens the project database for the duration of fun.
func (a *app) withStore(fun func(st *project.SQLStore) error) error {
	st, err := project.OpenSQL(a.cfg.DatabasePath())
	if err != nil {
		return err
	}
	defer func() { errors.Log(st.Close()) }()
	return fun(st)
}

func newProjectSaveCmd(a *app) *cobra.Command {
	var name, thumbnail string
	cmd := &cobra.Command{
		Use:   "save <project.json>",
		Short: "Save a project file to the database, creating or updating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := project.OpenFile(args[0])
			if err != nil {
				return err
			}
			if name != "" {
				rec.Name = name
			}
			if thumbnail != "" {
				img, _, err := imagex.Open(thumbnail)
				if err != nil {
					return err
				}
				if err := rec.SetThumbnail(img, project.ThumbnailSize); err != nil {
					return err
				}
			}
			return a.withStore(func(st *project.SQLStore) error {
				saved, err := st.Save(cmd.Context(), a.cfg.User, rec)
				if err != nil {
					return err
				}
				if saved.ID != rec.ID {
					// record the new identity in the file
					rec.ID, rec.UserID = saved.ID, saved.UserID
					rec.CreatedAt, rec.UpdatedAt = saved.CreatedAt, saved.UpdatedAt
					if err := project.SaveFile(rec, args[0]); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), saved.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "project name (default: the name in the file)")
	cmd.Flags().StringVar(&thumbnail, "thumbnail", "", "image file to make the project thumbnail from")
	return cmd
}

func newProjectListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the projects of the user, most recently updated first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(st *project.SQLStore) error {
				recs, err := st.List(cmd.Context(), a.cfg.User)
				if err != nil {
					return err
				}
				for _, rec := range recs {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-14s %s\n", rec.ID,
						rec.UpdatedAt.Local().Format(time.DateTime), rec.Canvas.ID, rec.Name)
				}
				return nil
			})
		},
	}
}

func newProjectGetCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Write a project from the database to a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(st *project.SQLStore) error {
				rec, err := st.Get(cmd.Context(), a.cfg.User, args[0])
				if err != nil {
					return err
				}
				if output == "" {
					output = rec.ID + ".json"
				}
				if err := project.SaveFile(rec, output); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), output)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "project file to write (default: <id>.json)")
	return cmd
}

func newProjectDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete projects from the database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(st *project.SQLStore) error {
				var errs []error
				for _, id := range args {
					errs = append(errs, st.Delete(cmd.Context(), a.cfg.User, id))
				}
				return errors.Join(errs...)
			})
		},
	}
}
