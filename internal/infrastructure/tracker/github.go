package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v69/github"
	"github.com/rmarchan/tablero/pkg/domain/tracking"
	"golang.org/x/oauth2"
)

// GitHubFetcher treats a repository's issues as the work-item list. Labels
// become tags, so stage and deliverable labels classify issues the same way
// tracker tags do.
type GitHubFetcher struct {
	cfg    GitHubConfig
	client *github.Client
}

func NewGitHubFetcher(cfg GitHubConfig) *GitHubFetcher {
	var client *github.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		client = github.NewClient(oauth2.NewClient(context.Background(), ts))
	} else {
		client = github.NewClient(nil)
	}
	return &GitHubFetcher{cfg: cfg, client: client}
}

func (f *GitHubFetcher) Name() string {
	return fmt.Sprintf("github:%s/%s", f.cfg.Owner, f.cfg.Repo)
}

// FetchWorkItems lists every issue in the repository, following pagination.
func (f *GitHubFetcher) FetchWorkItems(ctx context.Context) ([]tracking.WorkItem, error) {
	opts := &github.IssueListByRepoOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var items []tracking.WorkItem
	for {
		issues, resp, err := f.client.Issues.ListByRepo(ctx, f.cfg.Owner, f.cfg.Repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list issues: %w", err)
		}
		for _, issue := range issues {
			if issue.IsPullRequest() {
				continue
			}
			items = append(items, issueToWorkItem(issue))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return items, nil
}

func issueToWorkItem(issue *github.Issue) tracking.WorkItem {
	item := tracking.WorkItem{
		ID:    issue.GetNumber(),
		Title: issue.GetTitle(),
		State: mapIssueState(issue.GetState()),
		Type:  tracking.TypeTask,
	}

	if issue.Assignee != nil {
		item.AssignedTo = issue.Assignee.GetLogin()
	}
	for _, label := range issue.Labels {
		name := label.GetName()
		item.Tags = append(item.Tags, name)
		if strings.EqualFold(name, "user story") || strings.EqualFold(name, "story") {
			item.Type = tracking.TypeUserStory
		}
	}
	if issue.Milestone != nil && issue.Milestone.DueOn != nil {
		item.DueDate = tracking.Date{Time: issue.Milestone.DueOn.Time}
	}

	return item
}

func mapIssueState(state string) string {
	if state == "closed" {
		return tracking.StateClosed
	}
	return tracking.StateActive
}
